package main

import "github.com/katalvlaran/ridetime/internal/cli"

func main() {
	cli.Execute()
}
