package manifest

import (
	"fmt"

	"github.com/matzehuels/layoutc/pkg/core/tree"
	"github.com/matzehuels/layoutc/pkg/errors"
)

// Validate checks the document without building it.
func (d *Document) Validate() error {
	if err := errors.ValidateViewport(d.Viewport.Width, d.Viewport.Height); err != nil {
		return err
	}
	_, err := Build(d.Root)
	return err
}

// Build converts n into a content tree. Every error carries the path of the
// offending node, e.g. "root.children[1].child".
func Build(n Node) (tree.Content, error) {
	return build(n, "root")
}

func build(n Node, path string) (tree.Content, error) {
	if err := n.checkDimensions(path); err != nil {
		return nil, err
	}

	switch n.Type {
	case TypeView:
		return buildView(n, path)
	case TypeFrame:
		return buildFrame(n, path)
	case TypeVStack, TypeHStack:
		return buildStack(n, path)
	case TypeBox:
		return buildBox(n, path)
	case "":
		return nil, invalid(path, "missing type")
	default:
		return nil, invalid(path, "unknown type %q", n.Type)
	}
}

func buildView(n Node, path string) (tree.Content, error) {
	if err := n.only(path, "label", "color", "child"); err != nil {
		return nil, err
	}
	if err := errors.ValidateLabel(n.Label); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: label", path)
	}

	var child tree.Content
	if n.Child != nil {
		c, err := build(*n.Child, path+".child")
		if err != nil {
			return nil, err
		}
		child = c
	}

	v := tree.NewView(child).WithLabel(n.Label)
	if n.Color != "" {
		c, err := tree.ParseColor(n.Color)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: color", path)
		}
		v.WithBackground(c)
	}
	return v, nil
}

func buildFrame(n Node, path string) (tree.Content, error) {
	if err := n.only(path, "size", "child"); err != nil {
		return nil, err
	}
	if n.Child == nil {
		return nil, invalid(path, "frame needs a child")
	}

	child, err := build(*n.Child, path+".child")
	if err != nil {
		return nil, err
	}

	f := tree.OptionalFrame(child, n.Width, n.Height)
	f.Frame.MinWidth = n.MinWidth
	f.Frame.MaxWidth = n.MaxWidth
	f.Frame.MinHeight = n.MinHeight
	f.Frame.MaxHeight = n.MaxHeight
	return f, nil
}

func buildStack(n Node, path string) (tree.Content, error) {
	if err := n.only(path, "stack", "children"); err != nil {
		return nil, err
	}
	main, err := tree.ParseMainAxisAlignment(n.Main)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: main", path)
	}
	cross, err := tree.ParseCrossAxisAlignment(n.Cross)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: cross", path)
	}
	if n.Spacing != nil {
		if err := errors.ValidateDimension("spacing", *n.Spacing); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", path)
		}
	}

	children := make([]tree.Content, 0, len(n.Children))
	for i, cn := range n.Children {
		c, err := build(cn, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	var s interface {
		tree.Content
		Validate() error
	}
	if n.Type == TypeVStack {
		s = tree.NewVStack(main, cross, n.Spacing, children...)
	} else {
		s = tree.NewHStack(main, cross, n.Spacing, children...)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", path)
	}
	return s, nil
}

func buildBox(n Node, path string) (tree.Content, error) {
	if err := n.only(path, "size"); err != nil {
		return nil, err
	}
	if n.Width == nil || n.Height == nil {
		return nil, invalid(path, "box needs width and height")
	}
	if n.MinWidth != nil || n.MaxWidth != nil || n.MinHeight != nil || n.MaxHeight != nil {
		return nil, invalid(path, "box does not take min/max bounds")
	}
	return tree.NewSizedBox(*n.Width, *n.Height), nil
}

// only rejects fields that do not belong to the node's type. groups names
// the field groups the type accepts.
func (n Node) only(path string, groups ...string) error {
	allowed := make(map[string]bool, len(groups))
	for _, g := range groups {
		allowed[g] = true
	}

	check := func(group string, set bool, field string) error {
		if set && !allowed[group] {
			return invalid(path, "%s does not take %s", n.Type, field)
		}
		return nil
	}
	for _, c := range []struct {
		group string
		set   bool
		field string
	}{
		{"label", n.Label != "", "label"},
		{"color", n.Color != "", "color"},
		{"stack", n.Main != "", "main"},
		{"stack", n.Cross != "", "cross"},
		{"stack", n.Spacing != nil, "spacing"},
		{"size", n.Width != nil || n.Height != nil, "width/height"},
		{"size", n.MinWidth != nil || n.MaxWidth != nil || n.MinHeight != nil || n.MaxHeight != nil, "min/max bounds"},
		{"child", n.Child != nil, "child"},
		{"children", len(n.Children) > 0, "children"},
	} {
		if err := check(c.group, c.set, c.field); err != nil {
			return err
		}
	}
	return nil
}

func (n Node) checkDimensions(path string) error {
	for _, d := range []struct {
		name string
		v    *float64
	}{
		{"width", n.Width}, {"height", n.Height},
		{"min_width", n.MinWidth}, {"max_width", n.MaxWidth},
		{"min_height", n.MinHeight}, {"max_height", n.MaxHeight},
	} {
		if d.v == nil {
			continue
		}
		if err := errors.ValidateDimension(d.name, *d.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", path)
		}
	}
	return nil
}

func invalid(path, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidDocument, "%s: %s", path, fmt.Sprintf(format, args...))
}
