package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/layoutc/pkg/core/tree"
	"github.com/matzehuels/layoutc/pkg/errors"
)

// Version is the layout document version written by this package.
const Version = 1

// Viewport records the available size a layout was solved against. Nil axes
// were sized intrinsically.
type Viewport struct {
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// Rect is the absolute rectangle of one renderable element.
type Rect struct {
	Element string  `json:"element"`
	Label   string  `json:"label,omitempty"`
	Color   string  `json:"color,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Omission describes a child left out of the solved tree.
type Omission struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
	Error  string `json:"error"`
}

// Layout is the serialized result of one layout pass.
type Layout struct {
	Version  int        `json:"version"`
	Viewport Viewport   `json:"viewport"`
	Rects    []Rect     `json:"rects"`
	Omitted  []Omission `json:"omitted,omitempty"`
}

// FromResult converts a layout result.
func FromResult(res *tree.Result, viewport Viewport) Layout {
	l := Layout{
		Version:  Version,
		Viewport: viewport,
		Rects:    make([]Rect, 0, len(res.Placements)),
	}
	for _, p := range res.Placements {
		r := Rect{
			Element: tree.Describe(p.Content),
			X:       p.Layout.Location.X,
			Y:       p.Layout.Location.Y,
			Width:   p.Layout.Size.Width,
			Height:  p.Layout.Size.Height,
		}
		if v, ok := p.Content.(*tree.View); ok {
			r.Label = v.Label
			r.Color = v.Background.Hex()
		}
		l.Rects = append(l.Rects, r)
	}
	for _, o := range res.Omitted {
		l.Omitted = append(l.Omitted, Omission{
			Parent: tree.Describe(o.Parent),
			Child:  tree.Describe(o.Child),
			Error:  errors.UserMessage(o.Err),
		})
	}
	return l
}

// MarshalLayout encodes l as indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout decodes a layout document.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}
	if l.Version != Version {
		return Layout{}, errors.New(errors.ErrCodeUnsupported, "layout version %d, want %d", l.Version, Version)
	}
	return l, nil
}

// WriteLayoutFile writes l to path.
func WriteLayoutFile(l Layout, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	data, err := MarshalLayout(l)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadLayoutFile reads a layout document from path.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Layout{}, err
	}
	return UnmarshalLayout(data)
}
