package platform

import "testing"

func TestParseRect_Valid(t *testing.T) {
	r, err := ParseRect("10,20,300,400")
	if err != nil {
		t.Fatal(err)
	}
	if r != (Rect{X: 10, Y: 20, W: 300, H: 400}) {
		t.Errorf("got %+v, want {10 20 300 400}", r)
	}
}

func TestParseRect_WithSpaces(t *testing.T) {
	r, err := ParseRect("10, 20, 300.5, 400")
	if err != nil {
		t.Fatal(err)
	}
	if r.X != 10 || r.Y != 20 || r.W != 300.5 || r.H != 400 {
		t.Errorf("got %+v, want {10 20 300.5 400}", r)
	}
}

func TestParseRect_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10,20,300",
		"10,20,300,400,500",
		"a,b,c,d",
		"10,20,abc,400",
	}
	for _, s := range tests {
		_, err := ParseRect(s)
		if err == nil {
			t.Errorf("ParseRect(%q) should fail", s)
		}
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("12, 34")
	if err != nil {
		t.Fatal(err)
	}
	if p != (Point{X: 12, Y: 34}) {
		t.Errorf("got %+v, want {12 34}", p)
	}
	for _, s := range []string{"", "1", "1,2,3", "x,2", "1,y"} {
		if _, err := ParsePoint(s); err == nil {
			t.Errorf("ParsePoint(%q) should fail", s)
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{10, 10}, true},
		{Point{29.9, 29.9}, true},
		{Point{30, 15}, false},
		{Point{15, 30}, false},
		{Point{9, 15}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect_CenterAndInts(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}
	if c := r.Center(); c != (Point{50, 25}) {
		t.Errorf("Center() = %v, want {50 25}", c)
	}
	if got := (Rect{X: 1.4, Y: 1.6, W: 10.5, H: 0}).Ints(); got != [4]int{1, 2, 11, 0} {
		t.Errorf("Ints() = %v", got)
	}
	if !(Rect{W: 0, H: 10}).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestRect_Intersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 100}
	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{X: 50, Y: 50, W: 100, H: 100}, true},
		{Rect{X: 100, Y: 0, W: 10, H: 10}, false},
		{Rect{X: -10, Y: -10, W: 5, H: 5}, false},
		{Rect{X: 10, Y: 10, W: 1, H: 1}, true},
	}
	for _, tt := range tests {
		if got := r.Intersects(tt.o); got != tt.want {
			t.Errorf("Intersects(%+v) = %v, want %v", tt.o, got, tt.want)
		}
	}
}
