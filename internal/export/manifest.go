package export

import (
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is written at the root of the output directory when groups are kept.
const ManifestFileName = "directories.yml"

// Manifest lists the output directories created for groups, in discovery order.
type Manifest struct {
	mu          sync.Mutex
	directories []string
}

func (m *Manifest) Add(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.directories = append(m.directories, path)
}

func (m *Manifest) Directories() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.directories...)
}

// Encode writes the manifest as a YAML document:
//
//	---
//	note_directories:
//	  - "/export/Library"
func (m *Manifest) Encode(w io.Writer) error {
	directories := &yaml.Node{Kind: yaml.SequenceNode}
	for _, path := range m.Directories() {
		directories.Content = append(directories.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Style: yaml.DoubleQuotedStyle,
			Value: path,
		})
	}
	doc := &yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{
			{
				Kind: yaml.MappingNode,
				Content: []*yaml.Node{
					{Kind: yaml.ScalarNode, Value: "note_directories"},
					directories,
				},
			},
		},
	}

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFile saves the manifest.
func (m *Manifest) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create manifest: %w", err)
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("unable to write manifest: %w", err)
	}
	return f.Close()
}
