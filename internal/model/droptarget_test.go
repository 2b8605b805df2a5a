package model

import (
	"testing"

	"github.com/mj1618/dockyard/internal/platform"
)

func TestDropTargets(t *testing.T) {
	r := platform.Rect{W: 200, H: 100}
	got := DropTargets(r, 20)

	want := []DropTarget{
		{Dir: DirCenter, Hit: platform.Rect{X: 90, Y: 40, W: 20, H: 20}, Preview: r},
		{Dir: DirLeft, Hit: platform.Rect{X: 65, Y: 40, W: 20, H: 20}, Preview: platform.Rect{W: 100, H: 100}},
		{Dir: DirRight, Hit: platform.Rect{X: 115, Y: 40, W: 20, H: 20}, Preview: platform.Rect{X: 100, W: 100, H: 100}},
		{Dir: DirTop, Hit: platform.Rect{X: 90, Y: 15, W: 20, H: 20}, Preview: platform.Rect{W: 200, H: 50}},
		{Dir: DirBottom, Hit: platform.Rect{X: 90, Y: 65, W: 20, H: 20}, Preview: platform.Rect{Y: 50, W: 200, H: 50}},
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("target %d (%s): expected %+v, got %+v", i, w.Dir, w, got[i])
		}
	}
}

func TestDropTargets_DoNotOverlap(t *testing.T) {
	ts := DropTargets(platform.Rect{W: 40, H: 40}, 32)
	for i := range ts {
		c := ts[i].Hit.Center()
		for j := range ts {
			if i != j && ts[j].Hit.Contains(c) {
				t.Errorf("center of %s lies in %s", ts[i].Dir, ts[j].Dir)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"center", DirCenter},
		{"tab", DirCenter},
		{"Left", DirLeft},
		{"right", DirRight},
		{"up", DirTop},
		{" bottom ", DirBottom},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestParseLayoutType(t *testing.T) {
	for _, lt := range []LayoutType{LayoutCenter, LayoutHorizontal, LayoutVertical} {
		got, err := ParseLayoutType(lt.String())
		if err != nil || got != lt {
			t.Errorf("ParseLayoutType(%q) = %v, %v", lt.String(), got, err)
		}
	}
	if _, err := ParseLayoutType("grid"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
