// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestPointIn(t *testing.T) {
	r := Rect(10, 10, 0, 0)
	if r != (Rectangle{Max: Pt(10, 10)}) {
		t.Fatalf("Rect did not canonicalize: %v", r)
	}
	for _, tc := range []struct {
		p  Point
		in bool
	}{
		{Pt(0, 0), true},
		{Pt(9.5, 9.5), true},
		{Pt(10, 5), false},
		{Pt(5, 10), false},
		{Pt(-1, 5), false},
	} {
		if got := tc.p.In(r); got != tc.in {
			t.Errorf("%v.In(%v) = %v, want %v", tc.p, r, got, tc.in)
		}
	}
}

func TestRectangle(t *testing.T) {
	r := Rect(2, 4, 10, 10)
	if got, want := r.Size(), Pt(8, 6); got != want {
		t.Errorf("Size = %v, want %v", got, want)
	}
	if got, want := r.Add(Pt(1, -4)), Rect(3, 0, 11, 6); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if !Rect(0, 0, 0, 5).Empty() || r.Empty() {
		t.Error("Empty")
	}
}

func TestString(t *testing.T) {
	if got, want := Pt(1.5, -2).String(), "(1.5,-2)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if got, want := Rect(0, 0, 4, 2).String(), "(0,0)-(4,2)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
