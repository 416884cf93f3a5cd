package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ridetime/ride"
)

// Load opens the ride database at path and parses it with Parse.
//
// Errors:
//   - ErrOpen (wrapping the OS error) if path cannot be opened.
//   - *LoadError wrapping ErrFieldCount or ErrRead; Path is filled in.
func Load(path string, opts ...Option) (ride.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}
	defer f.Close()

	rides, err := Parse(f, opts...)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}

		return nil, err
	}

	return rides, nil
}

// Parse reads a ride database from r.
//
// The returned vector may be empty but is never nil on success. On any fatal
// error the vector is nil.
//
// Complexity: O(bytes) time, O(rides) memory.
func Parse(r io.Reader, opts ...Option) (ride.Vector, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	sep := string(o.Delimiter)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	rides := ride.Vector{}
	line := 0
	for sc.Scan() {
		line++
		if line == 1 && o.Header {
			continue
		}

		text := strings.TrimSuffix(sc.Text(), "\r")
		fields := splitFields(text, sep)
		if len(fields) != FieldCount {
			return nil, &LoadError{Line: line, Fields: len(fields), Err: ErrFieldCount}
		}

		it, reason := parseRow(fields)
		if it == nil {
			o.Logger.Debug("catalog.row_skipped", "line", line, "reason", reason)
			continue
		}
		rides = append(rides, it)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Line: line + 1, Err: fmt.Errorf("%w: %w", ErrRead, err)}
	}

	return rides, nil
}

// splitFields splits text on sep. A single trailing delimiter ends the last
// field instead of opening an empty one, so "a^1^2^" has three fields.
func splitFields(text, sep string) []string {
	return strings.Split(strings.TrimSuffix(text, sep), sep)
}

// parseRow turns three raw fields into a ride. On failure it returns nil and
// a short reason for diagnostics.
func parseRow(fields []string) (*ride.Item, string) {
	cost, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return nil, "cost is not a number"
	}
	minutes, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return nil, "time is not a number"
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) || math.Abs(cost) >= maxExactCost {
		return nil, "cost out of range"
	}

	it, err := ride.NewItem(fields[0], int(cost), minutes)
	if err != nil {
		return nil, err.Error()
	}

	return it, ""
}
