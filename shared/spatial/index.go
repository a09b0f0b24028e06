// Package spatial is the broad phase: a uniform grid over the level that
// narrows collision and relatch candidates down to the objects sharing a cell.
package spatial

import (
	"image"
	"slices"

	"github.com/solarlune/resolv"
)

// Bounded is anything that occupies a rectangle in level coordinates.
type Bounded interface {
	comparable
	CollisionBounds() image.Rectangle
}

type entry struct {
	proxy *resolv.Object
	cells []image.Point
}

// Index is a grid of cols x rows cells over a level. A grid with no columns or
// no rows is disabled and every query returns all items.
//
// Cell storage is a resolv.Space; each item owns one proxy resolv.Object whose
// Data points back at the item. Membership is maintained here rather than by
// resolv so that cells clamp to the grid edges.
type Index[T Bounded] struct {
	space        *resolv.Space
	cols, rows   int
	cellW, cellH int

	entries map[T]*entry
	items   []T
}

// New creates an index over a levelW x levelH area split into cols x rows
// cells.
func New[T Bounded](levelW, levelH, cols, rows int) *Index[T] {
	idx := &Index[T]{entries: make(map[T]*entry)}
	if cols <= 0 || rows <= 0 || levelW < cols || levelH < rows {
		return idx
	}

	idx.cols, idx.rows = cols, rows
	idx.cellW, idx.cellH = levelW/cols, levelH/rows
	idx.space = resolv.NewSpace(cols*idx.cellW, rows*idx.cellH, idx.cellW, idx.cellH)
	return idx
}

// Enabled reports whether the grid partitions anything.
func (idx *Index[T]) Enabled() bool {
	return idx.space != nil
}

// Grid returns the column and row counts and the cell size in pixels.
func (idx *Index[T]) Grid() (cols, rows, cellW, cellH int) {
	return idx.cols, idx.rows, idx.cellW, idx.cellH
}

// Len returns the number of indexed items.
func (idx *Index[T]) Len() int {
	return len(idx.items)
}

// Has reports whether item is indexed.
func (idx *Index[T]) Has(item T) bool {
	_, ok := idx.entries[item]
	return ok
}

// Insert adds item to the cells its bounds cover. Inserting an item twice is
// the same as calling Update.
func (idx *Index[T]) Insert(item T) {
	if _, ok := idx.entries[item]; ok {
		idx.Update(item)
		return
	}

	r := item.CollisionBounds()
	e := &entry{proxy: resolv.NewObject(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))}
	e.proxy.Data = item
	idx.entries[item] = e
	idx.items = append(idx.items, item)

	e.cells = idx.cellsFor(r)
	for _, c := range e.cells {
		idx.link(c, e.proxy)
	}
}

// Remove drops item from every cell it occupies.
func (idx *Index[T]) Remove(item T) {
	e, ok := idx.entries[item]
	if !ok {
		return
	}
	for _, c := range e.cells {
		idx.unlink(c, e.proxy)
	}
	delete(idx.entries, item)
	if i := slices.Index(idx.items, item); i >= 0 {
		idx.items = slices.Delete(idx.items, i, i+1)
	}
}

// Update moves item to the cells its current bounds cover. Only the cells
// that changed are touched; it returns false when the cell set is unchanged.
func (idx *Index[T]) Update(item T) bool {
	e, ok := idx.entries[item]
	if !ok {
		return false
	}

	r := item.CollisionBounds()
	e.proxy.X, e.proxy.Y = float64(r.Min.X), float64(r.Min.Y)
	e.proxy.W, e.proxy.H = float64(r.Dx()), float64(r.Dy())

	next := idx.cellsFor(r)
	if slices.Equal(next, e.cells) {
		return false
	}

	for _, c := range e.cells {
		if !slices.Contains(next, c) {
			idx.unlink(c, e.proxy)
		}
	}
	for _, c := range next {
		if !slices.Contains(e.cells, c) {
			idx.link(c, e.proxy)
		}
	}
	e.cells = next
	return true
}

// Cells returns the grid coordinates item currently occupies.
func (idx *Index[T]) Cells(item T) []image.Point {
	if e, ok := idx.entries[item]; ok {
		return slices.Clone(e.cells)
	}
	return nil
}

// Neighbors returns every other item sharing at least one cell with the
// cells item's current bounds cover, without duplicates. With the grid
// disabled it returns all other items.
func (idx *Index[T]) Neighbors(item T) []T {
	found := idx.collect(item.CollisionBounds())
	return slices.DeleteFunc(found, func(other T) bool { return other == item })
}

// Query returns the items registered in any cell that r touches.
func (idx *Index[T]) Query(r image.Rectangle) []T {
	return idx.collect(r)
}

// CellRect returns the pixel rectangle of the cell at (col, row).
func (idx *Index[T]) CellRect(col, row int) image.Rectangle {
	x, y := col*idx.cellW, row*idx.cellH
	return image.Rect(x, y, x+idx.cellW, y+idx.cellH)
}

// Occupancy returns how many items each cell holds, indexed [row][col].
func (idx *Index[T]) Occupancy() [][]int {
	if !idx.Enabled() {
		return nil
	}
	out := make([][]int, idx.rows)
	for row := range out {
		out[row] = make([]int, idx.cols)
		for col := range out[row] {
			if cell := idx.space.Cell(col, row); cell != nil {
				out[row][col] = len(cell.Objects)
			}
		}
	}
	return out
}

func (idx *Index[T]) collect(r image.Rectangle) []T {
	if !idx.Enabled() {
		return slices.Clone(idx.items)
	}

	var out []T
	seen := make(map[T]struct{})
	for _, c := range idx.cellsFor(r) {
		cell := idx.space.Cell(c.X, c.Y)
		if cell == nil {
			continue
		}
		for _, obj := range cell.Objects {
			other, ok := obj.Data.(T)
			if !ok {
				continue
			}
			if _, dup := seen[other]; dup {
				continue
			}
			seen[other] = struct{}{}
			out = append(out, other)
		}
	}
	return out
}

// cellsFor lists the cells covered by r in row-major order. The far edge is
// inclusive and the range is clamped to the grid.
func (idx *Index[T]) cellsFor(r image.Rectangle) []image.Point {
	if !idx.Enabled() {
		return nil
	}
	startCol := max(0, r.Min.X/idx.cellW)
	endCol := min(idx.cols-1, r.Max.X/idx.cellW)
	startRow := max(0, r.Min.Y/idx.cellH)
	endRow := min(idx.rows-1, r.Max.Y/idx.cellH)

	var cells []image.Point
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			cells = append(cells, image.Pt(col, row))
		}
	}
	return cells
}

func (idx *Index[T]) link(c image.Point, obj *resolv.Object) {
	if cell := idx.space.Cell(c.X, c.Y); cell != nil {
		cell.Objects = append(cell.Objects, obj)
	}
}

func (idx *Index[T]) unlink(c image.Point, obj *resolv.Object) {
	if cell := idx.space.Cell(c.X, c.Y); cell != nil {
		cell.Objects = slices.DeleteFunc(cell.Objects, func(o *resolv.Object) bool { return o == obj })
	}
}
