// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package board orders overlapping draws for a render pass.
//
// A Board manages a set of axis-aligned rectangles across a viewport.
// Each added rectangle is assigned a group index one larger than the
// maximum group index among the previously added rectangles it
// intersects, so rectangles in the same group are guaranteed disjoint and
// a renderer can issue each group as one non-self-overlapping batch.
//
// The viewport is partitioned into 255x255-pixel tiles; inside a tile,
// rectangle coordinates fit in bytes, and rectangles are stored in
// transposed 8-wide chunks that a vectorized implementation can test with
// a single wide compare (see tile.go).
package board

import "github.com/gogpu/gputypes"

// Board assigns group indices to rectangles across a viewport.
//
// A Board is not safe for concurrent use; separate goroutines should use
// separate Boards.
type Board struct {
	viewportWidth  int32
	viewportHeight int32
	cols, rows     int32
	tiles          []tile
}

// ResizeAndReset adapts the board to a viewport size and forgets all
// rectangles.
func (b *Board) ResizeAndReset(viewportWidth, viewportHeight int) {
	b.viewportWidth = int32(viewportWidth)
	b.viewportHeight = int32(viewportHeight)

	// Divide the viewport into 255x255 tiles.
	b.cols = (b.viewportWidth + tileSize - 1) / tileSize
	b.rows = (b.viewportHeight + tileSize - 1) / tileSize
	n := int(b.cols * b.rows)
	if cap(b.tiles) < n {
		b.tiles = make([]tile, n)
	} else {
		b.tiles = b.tiles[:n]
	}
	i := 0
	for y := int32(0); y < b.rows; y++ {
		for x := int32(0); x < b.cols; x++ {
			b.tiles[i].reset(x*tileSize, y*tileSize, 0)
			i++
		}
	}
}

// ResizeAndResetExtent is ResizeAndReset taking the render-target size
// type used across the GoGPU stack.
func (b *Board) ResizeAndResetExtent(size gputypes.Extent3D) {
	b.ResizeAndReset(int(size.Width), int(size.Height))
}

// AddRectangle adds the rectangle {left, top, right, bottom} (in viewport
// pixels, right/bottom exclusive) and returns its assigned group index:
// one larger than the maximum group index among the previously added
// rectangles it intersects. Empty, inverted, or fully offscreen
// rectangles are discarded and return 0.
func (b *Board) AddRectangle(left, top, right, bottom int) uint16 {
	l, t, r, bt := int32(left), int32(top), int32(right), int32(bottom)

	// Discard empty, negative, or offscreen rectangles.
	if l >= b.viewportWidth || t >= b.viewportHeight ||
		r <= 0 || bt <= 0 || l >= r || t >= bt {
		return 0
	}

	// The tiled rows and columns each corner falls on.
	x0 := clampSpan(l/tileSize, b.cols)
	y0 := clampSpan(t/tileSize, b.rows)
	x1 := clampSpan((r-1)/tileSize, b.cols)
	y1 := clampSpan((bt-1)/tileSize, b.rows)

	// Accumulate the max group index from each tile the rectangle
	// touches.
	var maxGroupIndices [chunkSize]uint16
	for y := y0; y <= y1; y++ {
		row := b.tiles[y*b.cols:]
		for x := x0; x <= x1; x++ {
			row[x].findMaxIntersectingGroupIndex(l, t, r, bt, &maxGroupIndices)
		}
	}

	groupIndex := maxGroupIndices[0]
	for _, g := range maxGroupIndices[1:] {
		groupIndex = max(groupIndex, g)
	}
	groupIndex++

	// Record the rectangle in each tile it touches.
	for y := y0; y <= y1; y++ {
		row := b.tiles[y*b.cols:]
		for x := x0; x <= x1; x++ {
			row[x].addRectangle(l, t, r, bt, groupIndex)
		}
	}

	return groupIndex
}

func clampSpan(v, limit int32) int32 {
	if v < 0 {
		return 0
	}
	if v > limit-1 {
		return limit - 1
	}
	return v
}
