package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/layoutc/pkg/core/tree"
	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/solver"
	"github.com/matzehuels/layoutc/pkg/solver/flex"
)

const rowTOML = `
version = 1

[viewport]
width = 200
height = 200

[root]
type = "vstack"
main = "leading"
cross = "center"

[[root.children]]
type = "hstack"
main = "center"
cross = "center"
spacing = 10

[[root.children.children]]
type = "frame"
width = 50
height = 100
child = { type = "view", label = "v1" }

[[root.children.children]]
type = "frame"
width = 100
height = 100
child = { type = "view", label = "v2", color = "#ff0000" }

[[root.children]]
type = "frame"
width = 50
height = 50
child = { type = "view", label = "v3" }
`

const rowYAML = `
version: 1
viewport: {width: 200, height: 200}
root:
  type: vstack
  main: leading
  cross: center
  children:
    - type: hstack
      main: center
      cross: center
      spacing: 10
      children:
        - {type: frame, width: 50, height: 100, child: {type: view, label: v1}}
        - {type: frame, width: 100, height: 100, child: {type: view, label: v2, color: "#ff0000"}}
    - {type: frame, width: 50, height: 50, child: {type: view, label: v3}}
`

const rowJSON = `{
  "version": 1,
  "viewport": {"width": 200, "height": 200},
  "root": {
    "type": "vstack", "main": "leading", "cross": "center",
    "children": [
      {"type": "hstack", "main": "center", "cross": "center", "spacing": 10, "children": [
        {"type": "frame", "width": 50, "height": 100, "child": {"type": "view", "label": "v1"}},
        {"type": "frame", "width": 100, "height": 100, "child": {"type": "view", "label": "v2", "color": "#ff0000"}}
      ]},
      {"type": "frame", "width": 50, "height": 50, "child": {"type": "view", "label": "v3"}}
    ]
  }
}`

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatTOML, rowTOML},
		{FormatYAML, rowYAML},
		{FormatJSON, rowJSON},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, err := Decode([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if doc.Version != 1 {
				t.Errorf("Version = %d, want 1", doc.Version)
			}
			if doc.Viewport.Width == nil || *doc.Viewport.Width != 200 {
				t.Errorf("Viewport.Width = %v, want 200", doc.Viewport.Width)
			}
			if err := doc.Validate(); err != nil {
				t.Fatalf("Validate() error: %v", err)
			}

			content, err := Build(doc.Root)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			res, err := tree.NewRoot(content).Compute(flex.New(),
				solver.Viewport(doc.Viewport.Width, doc.Viewport.Height))
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}

			want := []struct {
				label string
				x, y  float64
			}{
				{"v1", 0, 0},
				{"v2", 60, 0},
				{"v3", 55, 100},
			}
			if len(res.Placements) != len(want) {
				t.Fatalf("got %d placements, want %d", len(res.Placements), len(want))
			}
			for i, w := range want {
				p := res.Placements[i]
				v := p.Content.(*tree.View)
				if v.Label != w.label {
					t.Errorf("placement %d label = %q, want %q", i, v.Label, w.label)
				}
				if p.Layout.Location.X != w.x || p.Layout.Location.Y != w.y {
					t.Errorf("%s at (%g,%g), want (%g,%g)", w.label,
						p.Layout.Location.X, p.Layout.Location.Y, w.x, w.y)
				}
			}
			if v2 := res.Placements[1].Content.(*tree.View); v2.Background != tree.Red {
				t.Errorf("v2 background = %+v, want red", v2.Background)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		code   errors.Code
	}{
		{"bad toml", FormatTOML, "[root", errors.ErrCodeInvalidDocument},
		{"bad json", FormatJSON, "{", errors.ErrCodeInvalidDocument},
		{"empty yaml", FormatYAML, "", errors.ErrCodeInvalidDocument},
		{"no root", FormatJSON, `{"version": 1}`, errors.ErrCodeInvalidDocument},
		{"unknown key", FormatJSON, `{"root": {"type": "view", "colour": "red"}}`, errors.ErrCodeInvalidDocument},
		{"wrong type", FormatJSON, `{"root": {"type": "box", "width": "wide"}}`, errors.ErrCodeInvalidDocument},
		{"unknown format", Format("xml"), "<root/>", errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	neg := -1.0
	ten := 10.0

	tests := []struct {
		name     string
		node     Node
		wantPath string
	}{
		{"missing type", Node{}, "root: missing type"},
		{"unknown type", Node{Type: "grid"}, `root: unknown type "grid"`},
		{"box without size", Node{Type: TypeBox, Width: &ten}, "root: box needs width and height"},
		{"view with children", Node{Type: TypeView, Children: []Node{{Type: TypeView}}}, "root: view does not take children"},
		{"stack with label", Node{Type: TypeHStack, Label: "x"}, "root: hstack does not take label"},
		{"frame with main", Node{Type: TypeFrame, Main: "center"}, "root: frame does not take main"},
		{"frame without child", Node{Type: TypeFrame, Width: &ten}, "root: frame needs a child"},
		{"nested frame without child", Node{Type: TypeVStack, Children: []Node{{Type: TypeFrame}}},
			"root.children[0]: frame needs a child"},
		{"nested bad type", Node{Type: TypeVStack, Children: []Node{{Type: TypeView}, {Type: TypeView, Child: &Node{Type: "?"}}}},
			`root.children[1].child: unknown type "?"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.node)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidDocument) {
				t.Errorf("error code = %s, want INVALID_DOCUMENT", errors.GetCode(err))
			}
			if got := errors.UserMessage(err); got != tt.wantPath {
				t.Errorf("message = %q, want %q", got, tt.wantPath)
			}
		})
	}

	rejected := []struct {
		name string
		node Node
	}{
		{"negative width", Node{Type: TypeFrame, Width: &neg}},
		{"negative spacing", Node{Type: TypeVStack, Spacing: &neg}},
		{"bad color", Node{Type: TypeView, Color: "mauve"}},
		{"bad main", Node{Type: TypeVStack, Main: "stretch"}},
		{"bad cross", Node{Type: TypeHStack, Cross: "evenly"}},
		{"distributive with spacing", Node{Type: TypeHStack, Main: "between", Spacing: &ten}},
		{"control char label", Node{Type: TypeView, Label: "a\x00b"}},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.node); !errors.Is(err, errors.ErrCodeInvalidDocument) {
				t.Errorf("Build() error = %v, want INVALID_DOCUMENT", err)
			}
		})
	}
}

func TestBuildFrameBounds(t *testing.T) {
	lo, hi := 10.0, 20.0
	c, err := Build(Node{Type: TypeFrame, MinWidth: &lo, MaxWidth: &hi, Child: &Node{Type: TypeView}})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	f, ok := c.(*tree.FrameWrapper)
	if !ok {
		t.Fatalf("Build() = %T, want *tree.FrameWrapper", c)
	}
	if f.Frame.Width != nil || *f.Frame.MinWidth != 10 || *f.Frame.MaxWidth != 20 {
		t.Errorf("Frame = %s", f.Frame)
	}
	if _, ok := f.Content().(*tree.View); !ok {
		t.Errorf("frame content = %T, want *tree.View", f.Content())
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"layout.toml", FormatTOML, false},
		{"dir/layout.YAML", FormatYAML, false},
		{"layout.yml", FormatYAML, false},
		{"layout.json", FormatJSON, false},
		{"layout.xml", "", true},
		{"layout", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExampleDocuments(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example documents")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			format, err := FormatFromPath(path)
			if err != nil {
				t.Fatalf("FormatFromPath() error: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			doc, err := Decode(data, format)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			content, err := Build(doc.Root)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}

			views := 0
			for c := range tree.Walk(content) {
				if _, ok := c.(*tree.View); ok {
					views++
				}
			}
			res, err := tree.NewRoot(content, tree.WithStrictChildren()).Compute(flex.New(),
				solver.Viewport(doc.Viewport.Width, doc.Viewport.Height))
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if len(res.Placements) != views {
				t.Errorf("got %d placements, want one per view (%d)", len(res.Placements), views)
			}
		})
	}
}
