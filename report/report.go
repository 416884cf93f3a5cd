// Package report prints ride vectors and DP tables as plain text.
//
// The output is meant for humans and for redirecting to a file; it is not a
// stable machine format.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/ridetime/ride"
)

// MaxTableDim is the largest row or column count PrintTable will render.
const MaxTableDim = 250

// PrintVector writes each ride in v followed by the grand totals.
//
// Format:
//
//	*** ride Vector ***
//	Ye olde Ferris Wheel ==> Cost of 10 dollars; time points = 20
//	> Grand total cost: 10 dollars
//	> Grand total time: 20
//
// An empty vector prints "[empty ride list]" instead of rides and totals.
func PrintVector(w io.Writer, v ride.Vector) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "*** ride Vector ***")

	if len(v) == 0 {
		fmt.Fprintln(bw, "[empty ride list]")

		return bw.Flush()
	}

	for _, it := range v {
		fmt.Fprintf(bw, "Ye olde %s ==> Cost of %d dollars; time points = %s\n",
			it.Description(), it.Cost(), formatFloat(it.Time()))
	}
	cost, minutes := ride.Sum(v)
	fmt.Fprintf(bw, "> Grand total cost: %d dollars\n", cost)
	fmt.Fprintf(bw, "> Grand total time: %s\n", formatFloat(minutes))

	return bw.Flush()
}

// PrintTable writes a DP table with every cell right-aligned in width 5.
// Tables with more than MaxTableDim rows or columns print "[too large]".
// Redirecting to a file is usually easier to inspect than a terminal.
func PrintTable(w io.Writer, table [][]float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "*** 2D Cache ***")

	switch {
	case len(table) == 0:
		fmt.Fprintln(bw, "[empty]")
	case len(table) > MaxTableDim || len(table[0]) > MaxTableDim:
		fmt.Fprintln(bw, "[too large]")
	default:
		for _, row := range table {
			for _, cell := range row {
				fmt.Fprintf(bw, "%5s", formatFloat(cell))
			}
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}

// formatFloat prints at most six significant digits, dropping trailing zeros.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
