package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/layoutc/pkg/core/tree"
	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/solver"
	"github.com/matzehuels/layoutc/pkg/solver/flex"
)

// failing is a content element whose submission always fails.
type failing struct{ tree.SizedBox }

func (f *failing) Submit(*tree.Pass) (solver.NodeID, error) {
	return 0, errors.New(errors.ErrCodeSolver, "refused")
}

func sampleTree() tree.Content {
	return tree.NewHStack(tree.MainLeading, tree.CrossLeading, tree.Pt(5),
		tree.AbsoluteFrame(tree.NewView(nil).WithLabel("a").WithBackground(tree.Red), 10, 20),
		&failing{},
		tree.AbsoluteFrame(tree.NewView(nil), 30, 20),
	)
}

func TestFromResult(t *testing.T) {
	res, err := tree.NewRoot(sampleTree()).Compute(flex.New(), solver.Viewport(nil, nil))
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	l := FromResult(res, Viewport{})
	if l.Version != Version {
		t.Errorf("Version = %d, want %d", l.Version, Version)
	}
	want := []Rect{
		{Element: "View(a)", Label: "a", Color: "#ff0000", X: 0, Y: 0, Width: 10, Height: 20},
		{Element: "View", Color: "#ffffff", X: 15, Y: 0, Width: 30, Height: 20},
	}
	if len(l.Rects) != len(want) {
		t.Fatalf("got %d rects, want %d", len(l.Rects), len(want))
	}
	for i := range want {
		if l.Rects[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, l.Rects[i], want[i])
		}
	}
	if len(l.Omitted) != 1 {
		t.Fatalf("got %d omissions, want 1", len(l.Omitted))
	}
	if o := l.Omitted[0]; o.Parent != "HStack(leading, leading)" || o.Error != "refused" {
		t.Errorf("omission = %+v", o)
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	w := 200.0
	in := Layout{
		Version:  Version,
		Viewport: Viewport{Width: &w},
		Rects:    []Rect{{Element: "View", X: 1, Y: 2, Width: 3, Height: 4}},
	}
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteLayoutFile(in, path); err != nil {
		t.Fatalf("WriteLayoutFile() error: %v", err)
	}
	out, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	if out.Viewport.Width == nil || *out.Viewport.Width != 200 || out.Viewport.Height != nil {
		t.Errorf("Viewport = %+v", out.Viewport)
	}
	if len(out.Rects) != 1 || out.Rects[0] != in.Rects[0] {
		t.Errorf("Rects = %+v", out.Rects)
	}
}

func TestUnmarshalLayoutErrors(t *testing.T) {
	if _, err := UnmarshalLayout([]byte("{")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad JSON: error = %v, want INVALID_FORMAT", err)
	}
	if _, err := UnmarshalLayout([]byte(`{"version": 99}`)); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("future version: error = %v, want UNSUPPORTED", err)
	}
	if _, err := ReadLayoutFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleTree())

	for _, want := range []string{
		"digraph G {",
		`n0 [label="HStack(leading, leading)", style="rounded,dashed"];`,
		`n2 [label="View(a)", fillcolor="#ff0000"];`,
		"n0 -> n1;",
		"n1 -> n2;",
		"n0 -> n4;",
		"n4 -> n5;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderTreeSVG(t *testing.T) {
	svg, err := RenderTreeSVG(sampleTree())
	if err != nil {
		t.Fatalf("RenderTreeSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not SVG")
	}
}
