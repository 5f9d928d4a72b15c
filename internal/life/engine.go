package life

import (
	"runtime"
	"sync"

	"lifescope/internal/core"
)

// Engine computes Game of Life generations on the CPU. Rows are split
// across a pool of goroutines running the same per-cell kernel as the GPU
// shader. Every transition reads only the committed buffer, so the result
// is independent of how the rows are scheduled; the WaitGroup makes all
// scratch writes visible before the commit.
type Engine struct {
	grid    *core.Grid
	workers int
}

// NewEngine returns an engine over grid. workers <= 0 means NumCPU.
func NewEngine(grid *core.Grid, workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > grid.H {
		workers = grid.H
	}
	return &Engine{grid: grid, workers: workers}
}

// Step advances the board by exactly one generation and commits it.
func (e *Engine) Step() {
	w, h := e.grid.W, e.grid.H
	cur := e.grid.Current()
	nxt := e.grid.Scratch()

	rows := (h + e.workers - 1) / e.workers
	var wg sync.WaitGroup
	for start := 0; start < h; start += rows {
		end := start + rows
		if end > h {
			end = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			stepRows(cur, nxt, w, h, y0, y1)
		}(start, end)
	}
	wg.Wait()
	e.grid.Commit()
}

// stepRows writes next states for rows [y0, y1).
func stepRows(cur, nxt []uint8, w, h, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = nextState(cur[idx] != 0, liveNeighbors(cur, w, h, x, y))
		}
	}
}

// liveNeighbors counts live cells in the Moore neighborhood of (x, y).
// Neighbors outside the board are dead; the board does not wrap.
func liveNeighbors(cur []uint8, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			n += int(cur[ny*w+nx])
		}
	}
	return n
}

// nextState applies the B3/S23 rule.
func nextState(alive bool, neighbors int) uint8 {
	if alive {
		if neighbors == 2 || neighbors == 3 {
			return 1
		}
		return 0
	}
	if neighbors == 3 {
		return 1
	}
	return 0
}
