package app

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints the human-readable status lines of a run. Warnings and
// errors never go through it; those are log records.
type Reporter struct {
	// W receives all status lines. Defaults to os.Stdout.
	W io.Writer

	// Silent drops every status line when set.
	Silent bool
}

func (this *Reporter) Statusf(format string, args ...any) {
	if this.Silent {
		return
	}
	w := this.W
	if w == nil {
		w = os.Stdout
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
