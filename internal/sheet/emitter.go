package sheet

import "io"

// Emitter appends Markdown to the output as it is produced.
// The first write error is kept and following writes are discarded.
type Emitter struct {
	w       io.Writer
	written int64
	err     error
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

func (e *Emitter) Write(s string) {
	if e.err != nil || s == "" {
		return
	}
	n, err := io.WriteString(e.w, s)
	e.written += int64(n)
	e.err = err
}

// Written returns the number of bytes written so far.
func (e *Emitter) Written() int64 {
	return e.written
}

func (e *Emitter) Err() error {
	return e.err
}
