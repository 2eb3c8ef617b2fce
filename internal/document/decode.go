package document

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/gee/internal/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from a file extension. Unknown extensions are
// YAML, which also accepts JSON input.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses a document tree.
func Decode(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("G020").WithDetail(err.Error()).Wrap(err)
	}
	return decode(data, format)
}

// ReadFile reads and parses the document at path.
func ReadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("G020").WithDetail(err.Error()).Wrap(err)
	}
	tree, err := decode(data, FormatOf(path))
	if err != nil {
		if ge, ok := err.(*errors.Error); ok {
			ge.WithPath(path)
		}
		return nil, err
	}
	return tree, nil
}

func decode(data []byte, format Format) (any, error) {
	var tree any
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&tree)
	default:
		err = yaml.Unmarshal(data, &tree)
	}
	if err != nil {
		return nil, errors.New("G021").WithDetail(err.Error()).Wrap(err)
	}
	if tree == nil {
		return nil, errors.New("G021").WithDetail("document is empty")
	}
	return tree, nil
}
