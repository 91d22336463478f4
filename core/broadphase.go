package core

import (
	"math"
	"slices"
	"sync"

	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	tagSolid = "solid"
	tagProbe = "probe"
)

// Broadphase narrows the solid objects a player hitbox can touch using a
// resolv grid over their bounding boxes.
type Broadphase struct {
	mu    sync.Mutex
	space *resolv.Space
	probe *resolv.Object

	// Space coordinates are level coordinates minus the origin.
	originX, originY float64
	width, height    float64

	boxes []box
}

type box struct {
	left, right, low, high float64
}

func (b box) overlaps(minX, maxX, minY, maxY float64) bool {
	return !(b.left > maxX || b.right < minX || b.low > maxY || b.high < minY)
}

// NewBroadphase indexes the hitboxes by position in the slice.
func NewBroadphase(hitboxes []gamemath.Hitbox, cellSize int) *Broadphase {
	bp := &Broadphase{boxes: make([]box, len(hitboxes))}
	if len(hitboxes) == 0 {
		return bp
	}
	if cellSize < 1 {
		cellSize = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, hb := range hitboxes {
		bp.boxes[i] = box{hb.Left(), hb.Right(), hb.Low(), hb.High()}
		minX, maxX = math.Min(minX, hb.Left()), math.Max(maxX, hb.Right())
		minY, maxY = math.Min(minY, hb.Low()), math.Max(maxY, hb.High())
	}

	cell := float64(cellSize)
	bp.originX = math.Floor(minX) - cell
	bp.originY = math.Floor(minY) - cell
	bp.width = math.Ceil(maxX-bp.originX) + cell
	bp.height = math.Ceil(maxY-bp.originY) + cell

	bp.space = resolv.NewSpace(int(bp.width), int(bp.height), cellSize, cellSize)
	for i, b := range bp.boxes {
		w, h := b.right-b.left, b.high-b.low
		obj := resolv.NewObject(b.left-bp.originX, b.low-bp.originY, w, h, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = i
		bp.space.Add(obj)
	}

	bp.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	bp.space.Add(bp.probe)

	return bp
}

// Query returns, in ascending order, the indices of every box that overlaps
// the given extents. Touching edges count as overlap.
func (bp *Broadphase) Query(minX, maxX, minY, maxY float64) []int {
	if bp.space == nil {
		return nil
	}

	// Probe in space coordinates, one unit larger on each side so that
	// boxes ending exactly on a cell boundary are still visited.
	x, y := minX-bp.originX-1, minY-bp.originY-1
	w, h := maxX-minX+2, maxY-minY+2
	if x+w < 0 || y+h < 0 || x > bp.width || y > bp.height {
		return nil
	}

	bp.mu.Lock()
	bp.probe.X, bp.probe.Y = x, y
	bp.probe.W, bp.probe.H = w, h
	check := bp.probe.Check(0, 0, tagSolid)
	var candidates []*resolv.Object
	if check != nil {
		candidates = check.ObjectsByTags(tagSolid)
	}
	bp.mu.Unlock()

	var hits []int
	for _, obj := range candidates {
		i := obj.Data.(int)
		if bp.boxes[i].overlaps(minX, maxX, minY, maxY) {
			hits = append(hits, i)
		}
	}
	slices.Sort(hits)
	return hits
}

func (bp *Broadphase) Len() int {
	return len(bp.boxes)
}
