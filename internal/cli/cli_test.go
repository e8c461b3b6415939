package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/export"
)

const heroTOML = `
[viewport]
width = 200
height = 200

[root]
type = "vstack"
cross = "center"

[[root.children]]
type = "frame"
width = 50
height = 100
child = { type = "view", label = "hero", color = "#336699" }
`

const heroYAML = `
root:
  type: hstack
  spacing: 10
  children:
    - {type: box, width: 20, height: 20}
    - {type: frame, width: 30, height: 40, child: {type: view, label: side}}
`

// execute runs the root command with args against an isolated cache
// directory and returns everything printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	prev := stdout
	stdout = &out
	t.Cleanup(func() { stdout = prev })

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, err = cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestComputeWritesLayout(t *testing.T) {
	input := writeDoc(t, "hero.toml", heroTOML)

	out, err := execute(t, "compute", input)
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	want := strings.TrimSuffix(input, ".toml") + ".layout.json"
	if !strings.Contains(out, want) {
		t.Errorf("output does not name %s:\n%s", want, out)
	}

	l, err := export.ReadLayoutFile(want)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	if len(l.Rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(l.Rects))
	}
	r := l.Rects[0]
	if r.Element != "View(hero)" || r.Color != "#336699" {
		t.Errorf("rect = %+v", r)
	}
	if r.X != 0 || r.Y != 0 || r.Width != 50 || r.Height != 100 {
		t.Errorf("rect geometry = (%g,%g,%g,%g), want (0,0,50,100)", r.X, r.Y, r.Width, r.Height)
	}
}

func TestComputeCaches(t *testing.T) {
	input := writeDoc(t, "hero.toml", heroTOML)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	run := func(args ...string) string {
		var out bytes.Buffer
		prev := stdout
		stdout = &out
		defer func() { stdout = prev }()

		root := New(io.Discard, log.InfoLevel).RootCommand()
		root.SetArgs(args)
		root.SetErr(io.Discard)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("%v error: %v", args, err)
		}
		return out.String()
	}

	if out := run("compute", input); !strings.Contains(out, iconFresh) {
		t.Errorf("first run should be fresh:\n%s", out)
	}
	if out := run("compute", input); !strings.Contains(out, iconCached) {
		t.Errorf("second run should hit the cache:\n%s", out)
	}
	if out := run("compute", "--no-cache", input); !strings.Contains(out, iconFresh) {
		t.Errorf("--no-cache run should be fresh:\n%s", out)
	}
	if out := run("cache", "clear"); !strings.Contains(out, "Cleared 1 cached entries") {
		t.Errorf("cache clear output:\n%s", out)
	}
}

func TestComputeStdout(t *testing.T) {
	input := writeDoc(t, "side.yaml", heroYAML)

	out, err := execute(t, "compute", "-o", "-", input)
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	l, err := export.UnmarshalLayout([]byte(out))
	if err != nil {
		t.Fatalf("stdout is not a layout document: %v\n%s", err, out)
	}
	if len(l.Rects) != 1 || l.Rects[0].Label != "side" {
		t.Fatalf("rects = %+v", l.Rects)
	}
	if got := l.Rects[0].X; got != 30 {
		t.Errorf("side x = %g, want 30 (20 box + 10 spacing)", got)
	}
}

func TestComputeViewportFlags(t *testing.T) {
	input := writeDoc(t, "hero.toml", heroTOML)

	out, err := execute(t, "compute", "-o", "-", "--width", "20", input)
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	l, err := export.UnmarshalLayout([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if *l.Viewport.Width != 20 || *l.Viewport.Height != 200 {
		t.Errorf("viewport = (%g, %g), want (20, 200)", *l.Viewport.Width, *l.Viewport.Height)
	}
}

func TestComputeTable(t *testing.T) {
	input := writeDoc(t, "hero.toml", heroTOML)

	out, err := execute(t, "compute", "--table", input)
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	for _, want := range []string{"Element", "View(hero)", "#336699", "100"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestComputeErrors(t *testing.T) {
	toml := writeDoc(t, "hero.toml", heroTOML)
	unknown := writeDoc(t, "hero.txt", heroTOML)
	broken := writeDoc(t, "broken.json", `{"root": {"type": "circle"}}`)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown extension", []string{"compute", unknown}, errors.ErrCodeInvalidFormat},
		{"bad format flag", []string{"compute", "-f", "xml", toml}, errors.ErrCodeInvalidFormat},
		{"negative width", []string{"compute", "--width", "-5", toml}, errors.ErrCodeInvalidViewport},
		{"invalid document", []string{"compute", broken}, errors.ErrCodeInvalidDocument},
		{"format override", []string{"compute", "-f", "json", toml}, errors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}

	if _, err := execute(t, "compute", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("compute on a missing file should fail")
	}
}

func TestTree(t *testing.T) {
	input := writeDoc(t, "hero.toml", heroTOML)

	t.Run("dot", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "tree.dot")
		if _, err := execute(t, "tree", "-o", output, input); err != nil {
			t.Fatalf("tree error: %v", err)
		}
		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}
		dot := string(data)
		if !strings.HasPrefix(dot, "digraph") || !strings.Contains(dot, "View(hero)") {
			t.Errorf("unexpected DOT:\n%s", dot)
		}
		if got := strings.Count(dot, "->"); got != 2 {
			t.Errorf("got %d edges, want 2", got)
		}
	})

	t.Run("svg", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "tree.svg")
		if _, err := execute(t, "tree", "-o", output, input); err != nil {
			t.Fatalf("tree error: %v", err)
		}
		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(data, []byte("<svg")) {
			t.Error("output is not SVG")
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "tree.png")
		if _, err := execute(t, "tree", "-o", output, input); err == nil {
			t.Error("tree with .png output should fail")
		}
	})
}

func TestCachePath(t *testing.T) {
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q, want suffix %q", out, appName)
	}
}

func TestCacheClearEmpty(t *testing.T) {
	out, err := execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("output = %q", out)
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the command name")
	}
}

func TestCompletionCandidates(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"format flag", []string{"__complete", "compute", "--format", ""}, []string{"toml", "yaml", "json", ":4"}},
		{"compute document", []string{"__complete", "compute", ""}, []string{"toml", "yml", "json", ":8"}},
		{"tree document", []string{"__complete", "tree", ""}, []string{"yaml", ":8"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("completion error: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(out), "\n")
			for _, want := range tt.want {
				if !slices.Contains(lines, want) {
					t.Errorf("candidates %q missing %q", lines, want)
				}
			}
		})
	}
}

func TestRectTable(t *testing.T) {
	out := rectTable([]export.Rect{
		{Element: "View(a)", Label: "a", X: 1.5, Y: 0, Width: 10, Height: 20.25},
	})
	for _, want := range []string{"View(a)", "1.5", "20.25", "10"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{0: "0", 10: "10", 1.5: "1.5", 2.25: "2.25", 1.0 / 3: "0.33"}
	for in, want := range tests {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%g) = %q, want %q", in, got, want)
		}
	}
}
