// Package output provides textual overlap summaries.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/vcf-concordance/internal/overlap"
)

// SummaryWriter writes overlap cardinalities in tab-delimited format.
type SummaryWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewSummaryWriter creates a new tab-delimited summary writer.
func NewSummaryWriter(w io.Writer) *SummaryWriter {
	return &SummaryWriter{
		w:       bufio.NewWriter(w),
		columns: []string{"#Sets", "Variants"},
	}
}

// WriteHeader writes the header line.
func (sw *SummaryWriter) WriteHeader() error {
	_, err := sw.w.WriteString(strings.Join(sw.columns, "\t") + "\n")
	return err
}

// Write writes one row per non-empty exclusive region, in the
// diagram's descending-cardinality order.
func (sw *SummaryWriter) Write(d overlap.Diagram) error {
	for _, c := range d.Combinations() {
		if _, err := fmt.Fprintf(sw.w, "%s\t%d\n", c.Label(), c.Count); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered output.
func (sw *SummaryWriter) Flush() error {
	return sw.w.Flush()
}

// WriteAll writes header and rows and flushes.
func (sw *SummaryWriter) WriteAll(d overlap.Diagram) error {
	if err := sw.WriteHeader(); err != nil {
		return err
	}
	if err := sw.Write(d); err != nil {
		return err
	}
	return sw.Flush()
}
