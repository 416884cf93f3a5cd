package catalog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ridetime/catalog"
	"github.com/katalvlaran/ridetime/ride"
)

// rideDatabase is the full 8064-row database; tests that need it skip when absent.
var rideDatabase = filepath.Join("testdata", "ride.csv")

// LoadSuite exercises the loader against files on disk and in-memory readers.
type LoadSuite struct {
	suite.Suite
	dir string
}

func (s *LoadSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// write stores content under the suite temp dir and returns its path.
func (s *LoadSuite) write(name, content string) string {
	p := filepath.Join(s.dir, name)
	require.NoError(s.T(), os.WriteFile(p, []byte(content), 0o600))

	return p
}

// TestSample loads the checked-in sample, dropping only the unparsable rows.
func (s *LoadSuite) TestSample() {
	rides, err := catalog.Load(filepath.Join("testdata", "sample.csv"))
	require.NoError(s.T(), err)
	require.Equal(s.T(),
		[]string{"new enchanted world", "test Ferris Wheel", "test Speedway", "fractional cost"},
		ride.Descriptions(rides))

	// 7.9 dollars truncates to 7.
	require.Equal(s.T(), 7, rides[3].Cost())
	require.Equal(s.T(), 30.25, rides[3].Time())
}

// TestMissingFile reports ErrOpen and returns nothing.
func (s *LoadSuite) TestMissingFile() {
	rides, err := catalog.Load(filepath.Join(s.dir, "nope.csv"))
	require.ErrorIs(s.T(), err, catalog.ErrOpen)
	require.ErrorIs(s.T(), err, os.ErrNotExist)
	require.Nil(s.T(), rides)
}

// TestFieldCountIsFatal aborts the whole load on a short row.
func (s *LoadSuite) TestFieldCountIsFatal() {
	rides, err := catalog.Load(filepath.Join("testdata", "bad_fields.csv"))
	require.ErrorIs(s.T(), err, catalog.ErrFieldCount)
	require.Nil(s.T(), rides)

	var le *catalog.LoadError
	require.True(s.T(), errors.As(err, &le))
	require.Equal(s.T(), 3, le.Line)
	require.Equal(s.T(), 2, le.Fields)
	require.Contains(s.T(), le.Path, "bad_fields.csv")
	require.Contains(s.T(), err.Error(), "want 3 fields but got 2")
}

// TestTooManyFieldsIsFatal covers the other side of the field-count rule.
func (s *LoadSuite) TestTooManyFieldsIsFatal() {
	p := s.write("wide.csv", "h\na^1^2\nb^1^2^3\n")
	_, err := catalog.Load(p)
	require.ErrorIs(s.T(), err, catalog.ErrFieldCount)
}

// TestBlankLineIsFatal treats an empty line as a one-field row.
func (s *LoadSuite) TestBlankLineIsFatal() {
	p := s.write("blank.csv", "h\na^1^2\n\nb^1^2\n")
	_, err := catalog.Load(p)
	require.ErrorIs(s.T(), err, catalog.ErrFieldCount)
}

// TestHeaderOnly yields an empty, non-nil vector.
func (s *LoadSuite) TestHeaderOnly() {
	p := s.write("header.csv", "description^cost^time\n")
	rides, err := catalog.Load(p)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), rides)
	require.Empty(s.T(), rides)
}

// TestHeaderIsNotValidated confirms the header row is never split.
func (s *LoadSuite) TestHeaderIsNotValidated() {
	p := s.write("odd_header.csv", "this header has no carets\nx^1^1\n")
	rides, err := catalog.Load(p)
	require.NoError(s.T(), err)
	require.Len(s.T(), rides, 1)
}

// TestCRLF strips carriage returns before parsing the time field.
func (s *LoadSuite) TestCRLF() {
	p := s.write("crlf.csv", "h\r\nx^2^3.5\r\ny^1^4\r\n")
	rides, err := catalog.Load(p)
	require.NoError(s.T(), err)
	require.Len(s.T(), rides, 2)
	require.Equal(s.T(), 3.5, rides[0].Time())
}

func TestLoadSuite(t *testing.T) {
	suite.Run(t, new(LoadSuite))
}

// TestParse_Options covers a custom delimiter and a headerless source.
func TestParse_Options(t *testing.T) {
	src := "Ferris Wheel;10;20\nSpeedway;4;5\n"
	rides, err := catalog.Parse(strings.NewReader(src),
		catalog.WithDelimiter(';'),
		catalog.WithoutHeader(),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"Ferris Wheel", "Speedway"}, ride.Descriptions(rides))
}

// TestParse_LogsSkippedRows reports each dropped row through the injected logger.
func TestParse_LogsSkippedRows(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	src := "h\nok^1^1\nbad^x^1\nneg^1^-3\n"
	rides, err := catalog.Parse(strings.NewReader(src), catalog.WithLogger(l))
	require.NoError(t, err)
	require.Len(t, rides, 1)

	logged := buf.String()
	require.Equal(t, 2, strings.Count(logged, "catalog.row_skipped"))
	require.Contains(t, logged, `"line":3`)
	require.Contains(t, logged, "cost is not a number")
	require.Contains(t, logged, ride.ErrInvalidTime.Error())
}

// TestParse_NonFiniteCostSkipped keeps NaN and Inf costs out of int conversion.
func TestParse_NonFiniteCostSkipped(t *testing.T) {
	src := "h\na^NaN^1\nb^Inf^1\nc^1e300^1\nd^2^1\n"
	rides, err := catalog.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []string{"d"}, ride.Descriptions(rides))
}

// TestParse_TrailingDelimiter accepts one trailing delimiter but not two.
func TestParse_TrailingDelimiter(t *testing.T) {
	rides, err := catalog.Parse(strings.NewReader("h\nFerris Wheel^10^20^\nSpeedway^4^5\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"Ferris Wheel", "Speedway"}, ride.Descriptions(rides))
	require.Equal(t, 20.0, rides[0].Time())

	_, err = catalog.Parse(strings.NewReader("h\nFerris Wheel^10^20^^\n"))
	var le *catalog.LoadError
	require.True(t, errors.As(err, &le))
	require.ErrorIs(t, err, catalog.ErrFieldCount)
	require.Equal(t, 4, le.Fields)

	_, err = catalog.Parse(strings.NewReader("h\nFerris Wheel^10^\n"))
	require.ErrorIs(t, err, catalog.ErrFieldCount)
}

// TestLoad_RideDatabase checks the full park database row count.
func TestLoad_RideDatabase(t *testing.T) {
	if _, err := os.Stat(rideDatabase); err != nil {
		t.Skipf("%s not available", rideDatabase)
	}
	rides, err := catalog.Load(rideDatabase)
	require.NoError(t, err)
	require.Len(t, rides, 8064)

	ten := ride.Filter(rides, 100, 500, 10)
	three := ride.Filter(rides, 100, 500, 3)
	require.Len(t, ten, 10)
	require.Len(t, three, 3)
	require.Equal(t, "again amazing mystical vertigo", ten[0].Description())
	require.Equal(t, "A short enchanted typhoon", ten[9].Description())
	require.Equal(t, ride.Descriptions(three), ride.Descriptions(ten)[:3])
}
