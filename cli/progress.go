package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"theo/theo"
	"theo/theo/tentry"
)

// observe returns the observer handed to the archive engine and a function
// to call once the operation is over. Without a bar every file gets its own
// "\t->name" line.
func (r Runner) observe(bar bool, total int, description string) (theo.Observer, func()) {
	if !bar || r.Bar == nil {
		printLine := func(name string, _ tentry.Entry) {
			fmt.Fprintf(r.Out, "\t->%s\n", name)
		}
		return printLine, func() {}
	}

	progress := progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(r.Bar),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	advance := func(name string, _ tentry.Entry) {
		progress.Describe(description + " " + name)
		_ = progress.Add(1)
	}
	finish := func() {
		_ = progress.Finish()
	}
	return advance, finish
}
