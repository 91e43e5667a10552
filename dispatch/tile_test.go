// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dispatch

import "testing"

func TestNewGrid_CeilSizing(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
		cols, rows    int
	}{
		{name: "720p", width: 1280, height: 720, cols: 80, rows: 45},
		{name: "one partial tile each way", width: 17, height: 9, cols: 2, rows: 1},
		{name: "exact single tile", width: 16, height: 16, cols: 1, rows: 1},
		{name: "single pixel", width: 1, height: 1, cols: 1, rows: 1},
		{name: "zero width", width: 0, height: 9, cols: 0, rows: 0},
		{name: "zero height", width: 9, height: 0, cols: 0, rows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.width, tt.height)
			if g.Cols() != tt.cols || g.Rows() != tt.rows {
				t.Errorf("NewGrid(%d, %d) = %dx%d tiles, want %dx%d",
					tt.width, tt.height, g.Cols(), g.Rows(), tt.cols, tt.rows)
			}
			if g.NumTiles() != tt.cols*tt.rows {
				t.Errorf("NumTiles() = %d, want %d", g.NumTiles(), tt.cols*tt.rows)
			}
		})
	}
}

func TestGrid_EdgeTileClipping(t *testing.T) {
	g := NewGrid(17, 9)

	full := g.Tile(0, 0)
	if full.Width != 16 || full.Height != 9 {
		t.Errorf("tile(0,0) = %dx%d, want 16x9", full.Width, full.Height)
	}

	edge := g.Tile(1, 0)
	if edge.OriginX != 16 || edge.OriginY != 0 {
		t.Errorf("tile(1,0) origin = (%d, %d), want (16, 0)", edge.OriginX, edge.OriginY)
	}
	if edge.Width != 1 || edge.Height != 9 {
		t.Errorf("tile(1,0) = %dx%d, want 1x9", edge.Width, edge.Height)
	}
}

func TestGrid_TilesRowMajor(t *testing.T) {
	g := NewGrid(40, 40) // 3x3 tiles
	tiles := g.Tiles()
	if len(tiles) != 9 {
		t.Fatalf("len(Tiles()) = %d, want 9", len(tiles))
	}

	for i, tile := range tiles {
		wantX, wantY := i%3, i/3
		if tile.X != wantX || tile.Y != wantY {
			t.Errorf("tiles[%d] at (%d, %d), want (%d, %d)", i, tile.X, tile.Y, wantX, wantY)
		}
	}
}

func TestGrid_TilesCoverDomainExactly(t *testing.T) {
	g := NewGrid(33, 18)

	var area uint32
	for _, tile := range g.Tiles() {
		area += tile.Width * tile.Height
	}
	if area != 33*18 {
		t.Errorf("tiles cover %d pixels, want %d", area, 33*18)
	}
}
