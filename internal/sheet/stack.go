package sheet

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Tag is an open markup element.
type Tag struct {
	Name       string
	Attributes map[string]string
}

// Attr returns the value of an attribute, or "" when missing.
func (t *Tag) Attr(name string) string {
	if t == nil {
		return ""
	}
	return t.Attributes[name]
}

// Kind returns the "kind" attribute used by most Ulysses elements.
func (t *Tag) Kind() string {
	return t.Attr("kind")
}

// String returns the tag as written in the source (ex: <element kind="strong">), attributes sorted.
func (t *Tag) String() string {
	if t == nil {
		return "NONE"
	}
	var names []string
	for name := range t.Attributes {
		names = append(names, name)
	}
	slices.Sort(names)

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(t.Name)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf(" %s=%q", name, t.Attributes[name]))
	}
	sb.WriteString(">")
	return sb.String()
}

// TagStack tracks the elements currently open.
// Pushes and pops follow start and end events, so the stack is empty outside the root element.
type TagStack struct {
	tags []Tag
}

func (s *TagStack) Push(name string, attributes map[string]string) {
	if attributes == nil {
		attributes = map[string]string{}
	}
	s.tags = append(s.tags, Tag{Name: name, Attributes: attributes})
}

// Pop removes the current tag. It panics on an empty stack as start and end events are no longer balanced.
func (s *TagStack) Pop() Tag {
	if len(s.tags) == 0 {
		panic("sheet: pop on empty tag stack")
	}
	last := s.tags[len(s.tags)-1]
	s.tags = s.tags[:len(s.tags)-1]
	return last
}

// Current returns the innermost open tag, or nil.
func (s *TagStack) Current() *Tag {
	if len(s.tags) == 0 {
		return nil
	}
	return &s.tags[len(s.tags)-1]
}

// Parent returns the tag enclosing the current one, or nil when the depth is less than 2.
func (s *TagStack) Parent() *Tag {
	if len(s.tags) < 2 {
		return nil
	}
	return &s.tags[len(s.tags)-2]
}

func (s *TagStack) Len() int {
	return len(s.tags)
}
