package model

import (
	"strings"
	"testing"
)

func hasProblem(vs []Violation, substr string) bool {
	for _, v := range vs {
		if strings.Contains(v.Problem, substr) {
			return true
		}
	}
	return false
}

func TestValidate_CleanTrees(t *testing.T) {
	m, _ := buildSample(t)
	if vs := Validate(m.Root()); len(vs) != 0 {
		t.Errorf("expected no violations, got %+v", vs)
	}
	empty, _ := newTestManager(t)
	if vs := Validate(empty.Root()); len(vs) != 0 {
		t.Errorf("expected empty root to be valid, got %+v", vs)
	}
}

func TestValidate_DetectsBrokenTrees(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Layout
		want  string
	}{
		{
			name: "empty split side",
			build: func() *Layout {
				l := &Layout{Type: LayoutHorizontal, SizeRatio: 0.5}
				l.attach(0, &Window{Title: "A"})
				return l
			},
			want: "split side 1 is empty",
		},
		{
			name: "ratio out of range",
			build: func() *Layout {
				l := &Layout{Type: LayoutVertical, SizeRatio: 1}
				l.attach(0, &Window{Title: "A"})
				l.attach(1, &Window{Title: "B"})
				return l
			},
			want: "outside (0,1)",
		},
		{
			name: "child and windows on one side",
			build: func() *Layout {
				l := &Layout{Type: LayoutHorizontal, SizeRatio: 0.5}
				c := &Layout{}
				c.attach(0, &Window{Title: "C"})
				l.setChild(0, c)
				l.attach(0, &Window{Title: "A"})
				l.attach(1, &Window{Title: "B"})
				return l
			},
			want: "both a child and windows",
		},
		{
			name: "center using slot 1",
			build: func() *Layout {
				l := &Layout{}
				l.attach(0, &Window{Title: "A"})
				l.attach(1, &Window{Title: "B"})
				return l
			},
			want: "center node uses slot 1",
		},
		{
			name: "duplicate window",
			build: func() *Layout {
				l := &Layout{Type: LayoutHorizontal, SizeRatio: 0.5}
				w := &Window{Title: "A"}
				l.attach(0, w)
				l.attach(1, w)
				return l
			},
			want: "also docked at",
		},
		{
			name: "stale back-reference",
			build: func() *Layout {
				l := &Layout{}
				w := &Window{Title: "A"}
				l.attach(0, w)
				w.layout = nil
				return l
			},
			want: "stale back-reference",
		},
		{
			name: "empty center below root",
			build: func() *Layout {
				l := &Layout{Type: LayoutHorizontal, SizeRatio: 0.5}
				l.setChild(0, &Layout{})
				l.attach(1, &Window{Title: "B"})
				return l
			},
			want: "empty center node below the root",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := Validate(tt.build())
			if !hasProblem(vs, tt.want) {
				t.Errorf("expected a %q violation, got %+v", tt.want, vs)
			}
		})
	}
}

func TestManagerValidate_DetachedLayout(t *testing.T) {
	m, ws := newTestManager(t, "A")
	m.DockAt(ws["A"], nil, DirCenter)
	ws["A"].layout = &Layout{}
	if !hasProblem(m.Validate(), "detached layout") {
		t.Error("expected the detached layout to be reported")
	}
}
