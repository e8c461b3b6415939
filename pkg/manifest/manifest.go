package manifest

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/layoutc/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Node types.
const (
	TypeView   = "view"
	TypeFrame  = "frame"
	TypeVStack = "vstack"
	TypeHStack = "hstack"
	TypeBox    = "box"
)

// Viewport is the default available size of a document. Nil axes are
// sized intrinsically.
type Viewport struct {
	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty" mapstructure:"width"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty" mapstructure:"height"`
}

// Document is a decoded layout document.
type Document struct {
	Version  int      `json:"version,omitempty" yaml:"version,omitempty" mapstructure:"version"`
	Viewport Viewport `json:"viewport" yaml:"viewport" mapstructure:"viewport"`
	Root     Node     `json:"root" yaml:"root" mapstructure:"root"`
}

// Node describes one element of the tree.
type Node struct {
	Type string `json:"type" yaml:"type" mapstructure:"type"`

	// view
	Label string `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`
	Color string `json:"color,omitempty" yaml:"color,omitempty" mapstructure:"color"`

	// vstack, hstack
	Main    string   `json:"main,omitempty" yaml:"main,omitempty" mapstructure:"main"`
	Cross   string   `json:"cross,omitempty" yaml:"cross,omitempty" mapstructure:"cross"`
	Spacing *float64 `json:"spacing,omitempty" yaml:"spacing,omitempty" mapstructure:"spacing"`

	// frame, box
	Width     *float64 `json:"width,omitempty" yaml:"width,omitempty" mapstructure:"width"`
	Height    *float64 `json:"height,omitempty" yaml:"height,omitempty" mapstructure:"height"`
	MinWidth  *float64 `json:"min_width,omitempty" yaml:"min_width,omitempty" mapstructure:"min_width"`
	MaxWidth  *float64 `json:"max_width,omitempty" yaml:"max_width,omitempty" mapstructure:"max_width"`
	MinHeight *float64 `json:"min_height,omitempty" yaml:"min_height,omitempty" mapstructure:"min_height"`
	MaxHeight *float64 `json:"max_height,omitempty" yaml:"max_height,omitempty" mapstructure:"max_height"`

	Child    *Node  `json:"child,omitempty" yaml:"child,omitempty" mapstructure:"child"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

// ParseFormat accepts "toml", "yaml", "yml" or "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer document format of %s", path)
	}
	return ParseFormat(ext)
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var raw map[string]any
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse %s", format)
	}
	if raw == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "empty document")
	}
	return decodeMap(raw)
}

// DecodeTOML parses a TOML document.
func DecodeTOML(data []byte) (*Document, error) { return Decode(data, FormatTOML) }

// DecodeYAML parses a YAML document.
func DecodeYAML(data []byte) (*Document, error) { return Decode(data, FormatYAML) }

// DecodeJSON parses a JSON document.
func DecodeJSON(data []byte) (*Document, error) { return Decode(data, FormatJSON) }

func decodeMap(raw map[string]any) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	if doc.Root.Type == "" {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document has no root node")
	}
	return &doc, nil
}
