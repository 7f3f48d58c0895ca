package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDegreeCheck(t *testing.T) {
	tests := []struct {
		name          string
		ids           []string
		edges         [][2]string
		wantOK        bool
		wantOffending string
	}{
		{
			name:   "Chain",
			ids:    []string{"a", "b", "c"},
			edges:  [][2]string{{"a", "b"}, {"b", "c"}},
			wantOK: true,
		},
		{
			name:          "FanOut",
			ids:           []string{"a", "b", "c"},
			edges:         [][2]string{{"a", "b"}, {"a", "c"}},
			wantOffending: "a",
		},
		{
			name:          "FanIn",
			ids:           []string{"a", "b", "c"},
			edges:         [][2]string{{"a", "c"}, {"b", "c"}},
			wantOffending: "c",
		},
		{
			name:          "DuplicateEdge",
			ids:           []string{"a", "b"},
			edges:         [][2]string{{"a", "b"}, {"a", "b"}},
			wantOffending: "a",
		},
		{
			name:   "Isolated",
			ids:    []string{"a", "b"},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graphOf(t, tt.ids, tt.edges...)
			off, ok := DegreeCheck(g)
			if ok != tt.wantOK {
				t.Fatalf("DegreeCheck() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok {
				if off != -1 {
					t.Errorf("offending = %d, want -1", off)
				}
				return
			}
			if g.ID(off) != tt.wantOffending {
				t.Errorf("offending = %s, want %s", g.ID(off), tt.wantOffending)
			}
		})
	}
}

func TestWalkChain(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		edges [][2]string
		want  []string
	}{
		{
			name:  "OrderFollowsEdges",
			ids:   []string{"d", "b", "a", "c"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}},
			want:  []string{"a", "b", "c", "d"},
		},
		{
			name:  "SkipsIsolatedHead",
			ids:   []string{"lone", "a", "b"},
			edges: [][2]string{{"a", "b"}},
			want:  []string{"a", "b"},
		},
		{
			name: "SingleNode",
			ids:  []string{"a"},
			want: []string{"a"},
		},
		{
			name:  "PureCycle",
			ids:   []string{"a", "b"},
			edges: [][2]string{{"a", "b"}, {"b", "a"}},
		},
		{
			name:  "TailCycleStops",
			ids:   []string{"a", "b", "c"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "b"}},
			want:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graphOf(t, tt.ids, tt.edges...)
			var got []string
			for _, i := range WalkChain(g) {
				got = append(got, g.ID(i))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WalkChain mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
