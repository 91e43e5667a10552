// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package dispatch provides the data-parallel execution grid for the
// fractal kernel: the pixel domain is divided into fixed-size workgroup
// tiles that execute independently on a worker pool, one invocation per
// pixel, with no communication between invocations.
package dispatch

// Workgroup shape. The grid is sized with ceil division, so the dispatch
// may cover coordinates beyond the resolution; those are clipped at the
// tile level and never reach the kernel.
const (
	// WorkgroupWidth is the width of one workgroup tile in pixels.
	WorkgroupWidth = 16

	// WorkgroupHeight is the height of one workgroup tile in pixels.
	WorkgroupHeight = 16
)

// Tile is one workgroup's slice of the pixel domain.
//
// Edge tiles clip to the resolution: Width and Height may be smaller than
// the workgroup shape when the resolution is not a multiple of 16.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// OriginX, OriginY is the top-left pixel of the tile in image space.
	OriginX uint32
	OriginY uint32

	// Width is the clipped width in pixels.
	Width uint32

	// Height is the clipped height in pixels.
	Height uint32
}

// Grid is the tile decomposition of a Width x Height pixel domain.
type Grid struct {
	width  uint32
	height uint32
	cols   int
	rows   int
}

// NewGrid creates a grid covering the given resolution, with enough tiles
// for ceil(width/16) columns and ceil(height/16) rows, the same dispatch
// arithmetic a compute host uses to size its workgroup count.
func NewGrid(width, height uint32) Grid {
	if width == 0 || height == 0 {
		return Grid{}
	}
	return Grid{
		width:  width,
		height: height,
		cols:   int((width + WorkgroupWidth - 1) / WorkgroupWidth),
		rows:   int((height + WorkgroupHeight - 1) / WorkgroupHeight),
	}
}

// Width returns the pixel width the grid covers.
func (g Grid) Width() uint32 { return g.width }

// Height returns the pixel height the grid covers.
func (g Grid) Height() uint32 { return g.height }

// Cols returns the number of tile columns.
func (g Grid) Cols() int { return g.cols }

// Rows returns the number of tile rows.
func (g Grid) Rows() int { return g.rows }

// NumTiles returns the total number of tiles.
func (g Grid) NumTiles() int { return g.cols * g.rows }

// Tile returns the tile at column tx, row ty with its bounds clipped to
// the resolution.
func (g Grid) Tile(tx, ty int) Tile {
	t := Tile{
		X:       tx,
		Y:       ty,
		OriginX: uint32(tx) * WorkgroupWidth,
		OriginY: uint32(ty) * WorkgroupHeight,
		Width:   WorkgroupWidth,
		Height:  WorkgroupHeight,
	}
	if t.OriginX+t.Width > g.width {
		t.Width = g.width - t.OriginX
	}
	if t.OriginY+t.Height > g.height {
		t.Height = g.height - t.OriginY
	}
	return t
}

// Tiles returns all tiles in row-major order.
func (g Grid) Tiles() []Tile {
	tiles := make([]Tile, 0, g.NumTiles())
	for ty := range g.rows {
		for tx := range g.cols {
			tiles = append(tiles, g.Tile(tx, ty))
		}
	}
	return tiles
}
