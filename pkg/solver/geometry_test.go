package solver

import "testing"

func TestDimension(t *testing.T) {
	tests := []struct {
		name        string
		dim         Dimension
		wantDefined bool
		wantValue   float64
		wantString  string
	}{
		{"zero value is undefined", Dimension{}, false, 0, "auto"},
		{"undefined", Undefined(), false, 0, "auto"},
		{"points", Points(12.5), true, 12.5, "12.5pt"},
		{"zero points is defined", Points(0), true, 0, "0pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.dim.Value()
			if ok != tt.wantDefined || v != tt.wantValue {
				t.Errorf("Value() = %v, %v; want %v, %v", v, ok, tt.wantValue, tt.wantDefined)
			}
			if got := tt.dim.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

func TestNumberOrElse(t *testing.T) {
	if got := Defined(3).OrElse(9); got != 3 {
		t.Errorf("Defined(3).OrElse(9) = %v, want 3", got)
	}
	if got := UndefinedNumber().OrElse(9); got != 9 {
		t.Errorf("UndefinedNumber().OrElse(9) = %v, want 9", got)
	}
}

func TestViewport(t *testing.T) {
	w := 200.0
	s := Viewport(&w, nil)

	if v, ok := s.Width.Value(); !ok || v != 200 {
		t.Errorf("Width = %v, %v; want 200, true", v, ok)
	}
	if s.Height.IsDefined() {
		t.Error("Height should be undefined")
	}
}

func TestLayoutEdges(t *testing.T) {
	l := Layout{Location: Point{X: 10, Y: 20}, Size: Size[float64]{Width: 5, Height: 7}}
	if l.Right() != 15 || l.Bottom() != 27 {
		t.Errorf("Right/Bottom = %v/%v, want 15/27", l.Right(), l.Bottom())
	}
	if got := l.Location.Add(Point{X: 1, Y: 1}); got != (Point{X: 11, Y: 21}) {
		t.Errorf("Add = %+v", got)
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.FlexDirection != Row || s.AlignItems != AlignItemsStretch || s.FlexShrink != 1 {
		t.Errorf("DefaultStyle() = %+v", s)
	}
	if s.Size.Width.IsDefined() || s.MaxSize.Height.IsDefined() {
		t.Error("DefaultStyle sizes should be undefined")
	}
	if Column.String() != "column" || JustifySpaceEvenly.String() != "space-evenly" {
		t.Error("enum names mismatch")
	}
}
