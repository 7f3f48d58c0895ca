package layout

import "testing"

func TestSnakeCell(t *testing.T) {
	tests := []struct {
		i, cols  int
		row, col int
	}{
		{0, 4, 0, 0},
		{3, 4, 0, 3},
		{4, 4, 1, 3},
		{7, 4, 1, 0},
		{8, 4, 2, 0},
		{5, 3, 1, 0},
		{6, 3, 2, 0},
		{2, 1, 2, 0},
	}
	for _, tt := range tests {
		row, col := SnakeCell(tt.i, tt.cols)
		if row != tt.row || col != tt.col {
			t.Errorf("SnakeCell(%d, %d) = (%d, %d), want (%d, %d)", tt.i, tt.cols, row, col, tt.row, tt.col)
		}
	}
}

func TestSnakeCell_Adjacent(t *testing.T) {
	for _, cols := range []int{3, 4} {
		pr, pc := SnakeCell(0, cols)
		for i := 1; i < 20; i++ {
			r, c := SnakeCell(i, cols)
			if d := abs(r-pr) + abs(c-pc); d != 1 {
				t.Errorf("cols=%d: node %d at (%d,%d) not adjacent to (%d,%d)", cols, i, r, c, pr, pc)
			}
			pr, pc = r, c
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestSnakeColumns(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct{ n, want int }{
		{2, 3},
		{6, 3},
		{7, 4},
		{20, 4},
	}
	for _, tt := range tests {
		if got := SnakeColumns(tt.n, cfg); got != tt.want {
			t.Errorf("SnakeColumns(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSnakeChain_Coverage(t *testing.T) {
	cfg := DefaultConfig()

	// 4 of 5 nodes chained: exactly 80%.
	g := connectionGraph(chainGraphWithStrays(4, 1))
	if _, ok := snakeChain(g, cfg); !ok {
		t.Error("chain covering 80% should wrap")
	}

	g = connectionGraph(chainGraphWithStrays(3, 1))
	if _, ok := snakeChain(g, cfg); ok {
		t.Error("chain covering 75% should not wrap")
	}
}
