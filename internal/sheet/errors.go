package sheet

import (
	"errors"
	"fmt"
)

// ErrDestinationExists is returned when a title-named file already exists.
var ErrDestinationExists = errors.New("destination already exists")

// ParseError reports a malformed Content.xml.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed sheet at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed sheet: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownTagError reports text found inside markup outside the supported vocabulary.
type UnknownTagError struct {
	Tag    *Tag
	Parent *Tag
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %s (parent: %s)", e.Tag, e.Parent)
}
