package sheet

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/julien-sobczak/ulysses-export/pkg/text"
	"golang.org/x/text/encoding/htmlindex"
)

// Convert streams the Ulysses markup read from r as Markdown into w.
func Convert(r io.Reader, w io.Writer, options ...Option) (*Result, error) {
	c := NewConverter(w, options...)

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	seenRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := dec.InputPos()
			return nil, &ParseError{Line: line, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			seenRoot = true
			c.StartElement(t.Name.Local, attributes(t))
		case xml.EndElement:
			c.EndElement(t.Name.Local)
		case xml.CharData:
			if c.Depth() == 0 && !text.IsBlank(string(t)) {
				line, _ := dec.InputPos()
				return nil, &ParseError{Line: line, Err: errors.New("text outside of the root element")}
			}
			if err := c.CharData(string(t)); err != nil {
				return nil, err
			}
		}
		// Comments, processing instructions and directives carry nothing to render
	}

	if !seenRoot {
		return nil, &ParseError{Err: errors.New("document is empty")}
	}
	if c.Depth() != 0 {
		line, _ := dec.InputPos()
		return nil, &ParseError{Line: line, Err: fmt.Errorf("%d unclosed elements", c.Depth())}
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Result(), nil
}

func attributes(t xml.StartElement) map[string]string {
	result := make(map[string]string, len(t.Attr))
	for _, attr := range t.Attr {
		result[attr.Name.Local] = attr.Value
	}
	return result
}

// charsetReader supports sheets declaring a non UTF-8 encoding in their XML prolog.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
