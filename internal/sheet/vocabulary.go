package sheet

import "strings"

// construct is the interpretation of character data given the open tags.
type construct int

const (
	constructUnknown construct = iota
	constructContainer
	constructParagraph
	constructMarker
	constructLinkURL
	constructMediaTitle
	constructImageID
	constructLink
	constructStrong
	constructEmph
	constructCode
	constructInlineNative
	constructDelete
	constructAnnotation
	constructKeywords
	constructFileAttachment
	constructEscape
)

// Delimiters surrounding the text of inline elements.
var inlineDelimiters = map[construct][2]string{
	constructStrong:       {"**", "**"},
	constructEmph:         {"_", "_"},
	constructCode:         {"`", "`"},
	constructInlineNative: {"```", "```"},
	constructDelete:       {"~~", "~~"},
	constructAnnotation:   {"", ": "},
}

// classify determines how characters found inside current must be rendered.
func classify(current, parent *Tag) construct {
	if current == nil {
		return constructUnknown
	}
	switch current.Name {
	case "sheet", "markup", "string":
		return constructContainer
	case "p":
		return constructParagraph
	case "tag":
		return constructMarker
	case "escape":
		return constructEscape
	case "attribute":
		switch identifier := current.Attr("identifier"); {
		case identifier == "URL":
			return constructLinkURL
		case identifier == "title" && (parent.Kind() == "link" || parent.Kind() == "image"):
			return constructMediaTitle
		case identifier == "image" && parent.Kind() == "image":
			return constructImageID
		}
	case "element":
		switch current.Kind() {
		case "link":
			return constructLink
		case "strong":
			return constructStrong
		case "emph":
			return constructEmph
		case "code":
			return constructCode
		case "inlineNative":
			return constructInlineNative
		case "delete":
			return constructDelete
		case "annotation":
			return constructAnnotation
		}
	case "attachment":
		switch current.Attr("type") {
		case "keywords":
			return constructKeywords
		case "file":
			return constructFileAttachment
		}
	}
	return constructUnknown
}

// isHeadingMarker returns if the tag introduces a heading (ex: <tag kind="heading1">#</tag>).
func isHeadingMarker(t *Tag) bool {
	return t != nil && t.Name == "tag" && strings.HasPrefix(t.Kind(), "heading")
}

// isLink returns if the tag is a link element.
func isLink(t *Tag) bool {
	return t != nil && t.Name == "element" && t.Kind() == "link"
}

// unescape removes the backslashes Ulysses adds before Markdown-special characters.
func unescape(text string) string {
	return strings.ReplaceAll(text, `\`, "")
}
