package text_test

import (
	"testing"

	"github.com/julien-sobczak/ulysses-export/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, text.IsBlank(""))
	assert.True(t, text.IsBlank(" \t\n"))
	assert.False(t, text.IsBlank(" a "))
}

func TestTrimExtension(t *testing.T) {
	var tests = []struct {
		name     string // name
		input    string // input
		expected string // expected result
	}{
		{"File", "Sheet.ulysses", "Sheet"},
		{"Directory", "Library/Sheet.ulysses/", "Library/Sheet"},
		{"NoExtension", "Inbox", "Inbox"},
		{"DoubleExtension", "notes.tar.gz", "notes.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.TrimExtension(tt.input))
		})
	}
}

func TestHasExtension(t *testing.T) {
	assert.True(t, text.HasExtension("a/b/Note.ulysses", "ulysses"))
	assert.True(t, text.HasExtension("Note.ULYSSES", "ulysses"))
	assert.False(t, text.HasExtension("Note.ulgroup", "ulysses"))
	assert.False(t, text.HasExtension("ulysses", "ulysses"))
}
