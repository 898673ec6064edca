package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var loadDefault = sync.OnceValues(func() (Content, error) {
	return Parse(defaultsYAML)
})

// Default returns the embedded default content. It panics if the embedded
// document is invalid.
func Default() Content {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return c
}

// DefaultYAML returns a copy of the embedded default document, as a starting
// point for operator-supplied content files.
func DefaultYAML() []byte {
	return bytes.Clone(defaultsYAML)
}

// Parse decodes a YAML document and validates it. Unknown keys are
// rejected so typos do not silently fall back to empty copy.
func Parse(data []byte) (Content, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Content{}, errors.New("decode content: document is empty")
		}
		return Content{}, fmt.Errorf("decode content: %w", err)
	}
	return New(doc)
}

// Load reads and parses a content file. An empty path selects the embedded
// defaults.
func Load(path string) (Content, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return loadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Content{}, fmt.Errorf("load content %s: %w", path, err)
	}
	return c, nil
}
