package object

import (
	"image"
	"slices"
	"sync"

	"github.com/automoto/tilerun/shared/simconfig"
	"github.com/automoto/tilerun/shared/spatial"
)

// World owns the active objects of a level: a z-ordered list for drawing,
// the subset that is ticked, and the spatial index used as broad phase.
//
// World is driven from a single goroutine. Other goroutines, and code running
// inside Update, add and remove objects through AddWhenSafe and
// RemoveWhenSafe; those requests are applied after the current pass.
type World struct {
	// Verbose logs platform detaches that found no adjacent surface.
	Verbose bool

	sim   simconfig.Simulation
	level image.Rectangle
	view  image.Rectangle
	index *spatial.Index[*Object]

	objects []*Object
	updates []*Object

	tick     int
	updating bool

	mu            sync.Mutex
	pendingAdd    []*Object
	pendingRemove []*Object
}

// NewWorld creates an empty world over level.
func NewWorld(level image.Rectangle, sim simconfig.Simulation) *World {
	w := &World{sim: sim, level: level}
	w.index = w.newIndex()
	return w
}

func (w *World) newIndex() *spatial.Index[*Object] {
	return spatial.New[*Object](w.level.Dx(), w.level.Dy(), w.sim.GridCols, w.sim.GridRows)
}

// Simulation returns the tuning in effect.
func (w *World) Simulation() simconfig.Simulation { return w.sim }

// SetSimulation swaps the tuning between ticks. A changed grid rebuilds the
// spatial index.
func (w *World) SetSimulation(sim simconfig.Simulation) {
	regrid := sim.GridCols != w.sim.GridCols || sim.GridRows != w.sim.GridRows
	w.sim = sim
	if !regrid {
		return
	}
	w.index = w.newIndex()
	for _, o := range w.objects {
		w.index.Insert(o)
	}
}

// Level returns the rectangle movable objects are kept inside.
func (w *World) Level() image.Rectangle { return w.level }

// SetView sets the camera rectangle. Objects outside it are ticked only every
// OffscreenUpdateInterval ticks. An empty view counts everything as visible.
func (w *World) SetView(r image.Rectangle) { w.view = r }

// Index exposes the broad phase for debug drawing.
func (w *World) Index() *spatial.Index[*Object] { return w.index }

// Tick returns the number of completed update passes.
func (w *World) Tick() int { return w.tick }

// Len returns the number of objects in the world.
func (w *World) Len() int { return len(w.objects) }

// Objects returns all objects in draw order: higher Z first, so lower Z ends
// up on top.
func (w *World) Objects() []*Object { return slices.Clone(w.objects) }

// Has reports whether o is in the world.
func (w *World) Has(o *Object) bool { return o.world == w && w.index.Has(o) }

// Add inserts o now, or after the current pass when called from inside
// Update. It reports false if o is already present.
func (w *World) Add(o *Object) bool {
	if w.updating {
		w.AddWhenSafe(o)
		return true
	}
	return w.insert(o)
}

// Remove deletes o now, or after the current pass when called from inside
// Update.
func (w *World) Remove(o *Object) bool {
	if w.updating {
		w.RemoveWhenSafe(o)
		return true
	}
	return w.delete(o)
}

// AddWhenSafe queues o to be added after the next update pass. It may be
// called from any goroutine.
func (w *World) AddWhenSafe(o *Object) {
	w.mu.Lock()
	w.pendingAdd = append(w.pendingAdd, o)
	w.mu.Unlock()
}

// RemoveWhenSafe queues o to be removed after the next update pass. It may
// be called from any goroutine.
func (w *World) RemoveWhenSafe(o *Object) {
	w.mu.Lock()
	w.pendingRemove = append(w.pendingRemove, o)
	w.mu.Unlock()
}

// Pending returns the number of queued additions and removals.
func (w *World) Pending() (adds, removes int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pendingAdd), len(w.pendingRemove)
}

// Update runs one pass over the update list and then applies queued
// additions and removals.
func (w *World) Update() {
	w.tick++
	interval := max(1, w.sim.OffscreenUpdateInterval)

	w.updating = true
	for _, o := range w.updates {
		if w.visible(o) || w.tick%interval == 0 {
			o.Update()
		}
	}
	w.updating = false

	w.Flush()
}

// Flush applies queued additions, then queued removals.
func (w *World) Flush() {
	w.mu.Lock()
	adds, removes := w.pendingAdd, w.pendingRemove
	w.pendingAdd, w.pendingRemove = nil, nil
	w.mu.Unlock()

	for _, o := range adds {
		w.insert(o)
	}
	for _, o := range removes {
		w.delete(o)
	}
}

func (w *World) visible(o *Object) bool {
	return w.view.Empty() || o.Bounds().Overlaps(w.view)
}

func (w *World) insert(o *Object) bool {
	if w.Has(o) {
		return false
	}
	o.world = w

	// Keep descending Z; equal Z goes after existing objects.
	i := len(w.objects)
	for i > 0 && o.Z > w.objects[i-1].Z {
		i--
	}
	w.objects = slices.Insert(w.objects, i, o)

	if o.NeedsUpdate {
		w.updates = append(w.updates, o)
	}
	w.index.Insert(o)
	return true
}

func (w *World) delete(o *Object) bool {
	if !w.Has(o) {
		return false
	}
	w.index.Remove(o)
	w.objects = slices.DeleteFunc(w.objects, func(x *Object) bool { return x == o })
	w.updates = slices.DeleteFunc(w.updates, func(x *Object) bool { return x == o })

	for _, r := range w.Riders(o) {
		r.Detach()
	}
	o.platform = nil
	o.world = nil
	return true
}

// Neighbors returns the broad-phase candidates for o.
func (w *World) Neighbors(o *Object) []*Object {
	return w.index.Neighbors(o)
}

// ObjectsOfType returns every object of the given kind in draw order.
func (w *World) ObjectsOfType(kind Kind) []*Object {
	var out []*Object
	for _, o := range w.objects {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// ObjectsWithin returns the objects whose sprite bounds lie inside r, or
// merely overlap it when fullyEnclosed is false.
func (w *World) ObjectsWithin(r image.Rectangle, fullyEnclosed bool) []*Object {
	var out []*Object
	for _, o := range w.objects {
		b := o.Bounds()
		if fullyEnclosed && b.In(r) || !fullyEnclosed && b.Overlaps(r) {
			out = append(out, o)
		}
	}
	return out
}

// Riders returns the objects currently latched onto p.
func (w *World) Riders(p *Object) []*Object {
	var out []*Object
	for _, o := range w.objects {
		if o.platform == p {
			out = append(out, o)
		}
	}
	return out
}

// MoveCarrying moves p to (x, y) and carries everything latched onto it by
// the same delta.
func (w *World) MoveCarrying(p *Object, x, y int) {
	dx, dy := x-p.x, y-p.y
	if dx == 0 && dy == 0 {
		return
	}
	riders := w.Riders(p)
	p.place(x, y)
	for _, r := range riders {
		r.Carry(dx, dy)
	}
}

// Settle latches o onto whatever it was placed resting on. Used at level
// load so grounded objects start attached.
func (w *World) Settle(o *Object) bool {
	if o.Gravity() == 0 || o.platform != nil {
		return o.platform != nil
	}
	for _, c := range w.index.Neighbors(o) {
		if c.noCollision || c.Gravity() > 0 {
			continue
		}
		if o.IsLandingOnTopOf(c) {
			return o.Latch(c)
		}
	}
	return false
}
