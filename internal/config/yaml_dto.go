package config

// yamlConfig is the on-disk shape; pointers distinguish "unset" from zero.
type yamlConfig struct {
	Database   string      `yaml:"database"`
	Budget     *int        `yaml:"budget"`
	Algorithm  string      `yaml:"algorithm"`
	MemoryMode string      `yaml:"memory"`
	Filter     *yamlFilter `yaml:"filter"`
	Debug      bool        `yaml:"debug"`
	LogFile    string      `yaml:"log_file"`
}

type yamlFilter struct {
	MinTime *float64 `yaml:"min_time"`
	MaxTime *float64 `yaml:"max_time"`
	Limit   *int     `yaml:"limit"`
}
