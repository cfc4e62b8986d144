package sheet

import (
	"io"

	"github.com/julien-sobczak/ulysses-export/pkg/text"
)

// Result is the metadata extracted while converting a sheet.
type Result struct {
	// Title is the text of the first heading when no paragraph precedes it.
	Title    string
	HasTitle bool
	// Keywords and Attachments are the raw attachment texts, concatenated.
	Keywords    string
	Attachments string
}

// State is the per-sheet conversion state.
type State struct {
	title           string
	hasTitle        bool
	waitingForTitle bool
	writingBegan    bool
	keywords        string
	attachments     string
	link            string // pending link target
}

// Option configures a Converter.
type Option func(*Converter)

// IgnoreUnknownTags skips text inside unsupported markup instead of failing.
// The callback, if any, is called for every skipped text.
func IgnoreUnknownTags(onSkip func(*UnknownTagError)) Option {
	return func(c *Converter) {
		c.ignoreUnknown = true
		c.onSkip = onSkip
	}
}

// Converter turns the events of a Ulysses sheet into Markdown.
type Converter struct {
	stack TagStack
	out   *Emitter
	state State

	ignoreUnknown bool
	onSkip        func(*UnknownTagError)
}

func NewConverter(w io.Writer, options ...Option) *Converter {
	c := &Converter{
		out: NewEmitter(w),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// StartElement is called when an element opens.
func (c *Converter) StartElement(name string, attributes map[string]string) {
	c.stack.Push(name, attributes)
}

// EndElement is called when an element closes.
func (c *Converter) EndElement(name string) {
	current := c.stack.Current()
	switch {
	case name == "element" && isLink(current):
		// Ready for the next link
		c.state.link = ""
	case name == "p":
		c.state.waitingForTitle = false
		c.out.Write("\n")
	case name == "tag" && isHeadingMarker(current) && !c.state.writingBegan:
		// The following text in the paragraph is the title
		c.state.waitingForTitle = true
	}
	c.stack.Pop()
}

// CharData is called with text found between tags.
func (c *Converter) CharData(data string) error {
	current, parent := c.stack.Current(), c.stack.Parent()

	if current == nil && text.IsBlank(data) {
		// Whitespace around the root element
		return nil
	}

	switch cons := classify(current, parent); cons {
	case constructContainer, constructMediaTitle:
		// Nothing to render
	case constructParagraph:
		if c.state.waitingForTitle {
			c.state.title += data
			c.state.hasTitle = true
		}
		c.state.writingBegan = true
		c.out.Write(data)
	case constructMarker:
		c.out.Write(data)
	case constructLinkURL:
		c.state.link += data
	case constructImageID:
		c.out.Write("(image with ID " + data + ")")
	case constructLink:
		c.out.Write("[" + data + "](" + c.state.link + ")")
	case constructStrong, constructEmph, constructCode, constructInlineNative, constructDelete, constructAnnotation:
		delimiters := inlineDelimiters[cons]
		c.out.Write(delimiters[0] + data + delimiters[1])
	case constructKeywords:
		c.state.keywords += data
	case constructFileAttachment:
		c.state.attachments += data
	case constructEscape:
		unescaped := unescape(data)
		// Escapes inside a link belong to its target
		if parent.Kind() == "link" {
			c.state.link += unescaped
		} else {
			c.out.Write(unescaped)
		}
	case constructUnknown:
		err := &UnknownTagError{Tag: copyTag(current), Parent: copyTag(parent)}
		if !c.ignoreUnknown {
			return err
		}
		if c.onSkip != nil {
			c.onSkip(err)
		}
	}
	return c.out.Err()
}

// Depth returns the number of open elements.
func (c *Converter) Depth() int {
	return c.stack.Len()
}

// Written returns the number of Markdown bytes written.
func (c *Converter) Written() int64 {
	return c.out.Written()
}

// Err returns the first error met while writing the output.
func (c *Converter) Err() error {
	return c.out.Err()
}

// Result returns the metadata extracted so far.
func (c *Converter) Result() *Result {
	return &Result{
		Title:       c.state.title,
		HasTitle:    c.state.hasTitle,
		Keywords:    c.state.keywords,
		Attachments: c.state.attachments,
	}
}

func copyTag(t *Tag) *Tag {
	if t == nil {
		return nil
	}
	attributes := make(map[string]string, len(t.Attributes))
	for k, v := range t.Attributes {
		attributes[k] = v
	}
	return &Tag{Name: t.Name, Attributes: attributes}
}
