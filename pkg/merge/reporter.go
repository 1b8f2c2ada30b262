package merge

import (
	"fmt"
	"io"
)

// Reporter prints the user-facing progress, warning and summary lines.
type Reporter struct {
	out io.Writer
	err io.Writer
}

// NewReporter returns a Reporter writing progress to out and warnings to errOut.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, err: errOut}
}

// Loaded reports a document that contributed items.
func (r *Reporter) Loaded(name string, count int) {
	fmt.Fprintf(r.out, "  • Loaded %s (%d items)\n", name, count)
}

// Warn reports a document that was skipped because it failed to load.
func (r *Reporter) Warn(name string, err error) {
	fmt.Fprintf(r.err, "Warning: Could not load %s: %v\n", name, err)
}

// Merged prints the final summary.
func (r *Reporter) Merged(files, items int) {
	fmt.Fprintf(r.out, "Merged %d manifest files → %d total items\n", files, items)
}
