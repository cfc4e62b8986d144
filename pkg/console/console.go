package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ProgressLog reports a counter whose total is unknown in advance.
//
// In interactive mode, the same line is rewritten on every step.
// Otherwise, a line is printed every N steps so that logs stay readable when redirected to a file.
type ProgressLog struct {
	mu            sync.Mutex
	output        io.Writer
	interactive   bool
	every         int
	maxCharacters int
}

func NewProgressLog(options ...func(*ProgressLog)) *ProgressLog {
	result := &ProgressLog{
		output:        os.Stdout,
		interactive:   false,
		every:         500,
		maxCharacters: 80,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ToWriter(w io.Writer) func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.output = w
	}
}

// Interactive rewrites the current line instead of printing periodic lines.
func Interactive(enabled bool) func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.interactive = enabled
	}
}

// Every sets how many steps separate two lines in non-interactive mode.
func Every(steps int) func(*ProgressLog) {
	return func(s *ProgressLog) {
		if steps > 0 {
			s.every = steps
		}
	}
}

func LineLength(characters int) func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.maxCharacters = characters
	}
}

// Log reports the current step. The message is printed every N steps, or on every step in interactive mode.
// Safe for concurrent use.
func (l *ProgressLog) Log(currentStep int, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.interactive {
		if currentStep > 0 && currentStep%l.every == 0 {
			fmt.Fprintln(l.output, message)
		}
		return
	}

	fmt.Fprint(l.output, l.pad(message), "\r")
}

// Clear erases the interactive line and prints a final message, if any.
func (l *ProgressLog) Clear(newMessage string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.interactive {
		if newMessage != "" {
			fmt.Fprintln(l.output, newMessage)
		}
		return
	}

	// Rewrite the last line
	fmt.Fprint(l.output, l.pad(newMessage))

	if newMessage == "" {
		fmt.Fprint(l.output, "\r")
	} else {
		// Move to next line
		fmt.Fprint(l.output, "\n")
	}
}

func (l *ProgressLog) pad(line string) string {
	if len(line) > l.maxCharacters {
		line = line[0:l.maxCharacters]
	}
	return line + strings.Repeat(" ", l.maxCharacters-len(line))
}
