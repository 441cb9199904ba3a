package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\x1b[31m"
	colorBold  = "\x1b[1m"
	colorReset = "\x1b[0m"

	checkFailedMsg = "\nChecking failed with %d error(s)\n"
)

// Emitter writes diagnostics to a writer. Colour is only used when the
// writer is a terminal.
type Emitter struct {
	writer io.Writer
	color  bool
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{writer: w, color: isTerminal(w)}
}

// SetColor overrides terminal detection.
func (e *Emitter) SetColor(on bool) {
	e.color = on
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Emit writes one diagnostic.
func (e *Emitter) Emit(d *DiagnosticError) {
	prefix := ""
	if d.File != "" {
		prefix = d.File + ": "
	}
	if e.color {
		fmt.Fprintf(e.writer, "%s%s%serror[%s]%s: %s\n", prefix, colorBold, colorRed, d.Code, colorReset, d.Message)
		return
	}
	fmt.Fprintf(e.writer, "%serror[%s]: %s\n", prefix, d.Code, d.Message)
}

// EmitAll writes every diagnostic followed by a summary line.
func (e *Emitter) EmitAll(errs []*DiagnosticError) {
	for _, d := range errs {
		e.Emit(d)
	}
	if len(errs) > 0 {
		fmt.Fprintf(e.writer, checkFailedMsg, len(errs))
	}
}
