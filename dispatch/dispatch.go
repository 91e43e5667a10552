// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dispatch

// InvocationFunc is the body of one invocation: it receives the pixel
// coordinate it owns. Coordinates handed to it are always within the
// grid's resolution.
type InvocationFunc func(x, y uint32)

// ForEach runs fn once for every in-bounds pixel coordinate of the grid,
// one tile per work item, and returns when every tile has completed.
//
// No locks are taken around fn: each invocation owns exactly one pixel
// coordinate, so writes to the destination image are disjoint by
// construction and never collide. Tiles execute concurrently in no defined
// order; the only early exit any invocation takes is its own local one.
//
// If pool is nil the grid is executed serially on the calling goroutine,
// which is useful for tests and deterministic profiling.
func ForEach(pool *WorkerPool, grid Grid, fn InvocationFunc) {
	if grid.NumTiles() == 0 || fn == nil {
		return
	}

	if pool == nil {
		for _, t := range grid.Tiles() {
			runTile(t, fn)
		}
		return
	}

	tiles := grid.Tiles()
	work := make([]func(), len(tiles))
	for i, t := range tiles {
		tile := t
		work[i] = func() { runTile(tile, fn) }
	}
	pool.ExecuteAll(work)
}

// runTile executes every invocation of one tile. Tile bounds are already
// clipped to the resolution, so fn never sees an out-of-range coordinate.
// The grid plays the same role as the bounds guard at the top of the
// compute shader.
func runTile(t Tile, fn InvocationFunc) {
	for dy := uint32(0); dy < t.Height; dy++ {
		y := t.OriginY + dy
		for dx := uint32(0); dx < t.Width; dx++ {
			fn(t.OriginX+dx, y)
		}
	}
}
