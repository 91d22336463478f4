package pathfinding

import (
	"math"

	"github.com/automoto/tasplanner/core"
	"github.com/automoto/tasplanner/shared/gamemath"
	astar "github.com/beefsack/go-astar"
)

// NavGrid is a coarse occupancy grid over a level. A cell is blocked when a
// single rectangular wall or spike covers it completely.
type NavGrid struct {
	Width, Height    int
	CellSize         float64
	OriginX, OriginY float64
	Nodes            [][]*NavNode
}

// NavNode is one grid cell. Implements astar.Pather.
type NavNode struct {
	X, Y    int
	Blocked bool
	Grid    *NavGrid
}

// PathNeighbors returns the free cells around n, cardinal first.
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather

	dirs := []struct{ dx, dy int }{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	}

	for _, d := range dirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if nx < 0 || nx >= n.Grid.Width || ny < 0 || ny >= n.Grid.Height {
			continue
		}
		if neighbor := n.Grid.Nodes[ny][nx]; !neighbor.Blocked {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return n.distance(to.(*NavNode))
}

func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	return n.distance(to.(*NavNode))
}

func (n *NavNode) distance(o *NavNode) float64 {
	dx := float64(o.X - n.X)
	dy := float64(o.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// NewNavGrid covers the level geometry and both points with a free border
// two cells wide.
func NewNavGrid(static *core.StaticState, from, to gamemath.Vec, cellSize float64) *NavGrid {
	var blockers []gamemath.Hitbox
	for _, s := range static.Solids {
		if s.Hitbox.IsRect() {
			blockers = append(blockers, s.Hitbox)
		}
	}
	blockers = append(blockers, static.Lethal...)

	minX, maxX := math.Min(from.X, to.X), math.Max(from.X, to.X)
	minY, maxY := math.Min(from.Y, to.Y), math.Max(from.Y, to.Y)
	for _, s := range static.Solids {
		minX, maxX = math.Min(minX, s.Hitbox.Left()), math.Max(maxX, s.Hitbox.Right())
		minY, maxY = math.Min(minY, s.Hitbox.Low()), math.Max(maxY, s.Hitbox.High())
	}
	for _, l := range static.Lethal {
		minX, maxX = math.Min(minX, l.Left()), math.Max(maxX, l.Right())
		minY, maxY = math.Min(minY, l.Low()), math.Max(maxY, l.High())
	}

	grid := &NavGrid{
		CellSize: cellSize,
		OriginX:  math.Floor(minX/cellSize)*cellSize - 2*cellSize,
		OriginY:  math.Floor(minY/cellSize)*cellSize - 2*cellSize,
	}
	grid.Width = int(math.Ceil((maxX-grid.OriginX)/cellSize)) + 2
	grid.Height = int(math.Ceil((maxY-grid.OriginY)/cellSize)) + 2

	grid.Nodes = make([][]*NavNode, grid.Height)
	for y := range grid.Nodes {
		grid.Nodes[y] = make([]*NavNode, grid.Width)
		for x := range grid.Nodes[y] {
			grid.Nodes[y][x] = &NavNode{X: x, Y: y, Grid: grid}
		}
	}

	for _, hb := range blockers {
		x0 := int(math.Ceil((hb.Left() - grid.OriginX) / cellSize))
		x1 := int(math.Floor((hb.Right()-grid.OriginX)/cellSize)) - 1
		y0 := int(math.Ceil((hb.Low() - grid.OriginY) / cellSize))
		y1 := int(math.Floor((hb.High()-grid.OriginY)/cellSize)) - 1
		for y := max(y0, 0); y <= min(y1, grid.Height-1); y++ {
			for x := max(x0, 0); x <= min(x1, grid.Width-1); x++ {
				grid.Nodes[y][x].Blocked = true
			}
		}
	}

	return grid
}

// NodeAt returns the cell containing p, or nil outside the grid.
func (g *NavGrid) NodeAt(p gamemath.Vec) *NavNode {
	x := int(math.Floor((p.X - g.OriginX) / g.CellSize))
	y := int(math.Floor((p.Y - g.OriginY) / g.CellSize))
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// CoarseRoute reports whether free cells connect from and to, and the route
// length in cells. The end cells count as free.
func CoarseRoute(static *core.StaticState, from, to gamemath.Vec, cellSize float64) (float64, bool) {
	grid := NewNavGrid(static, from, to, cellSize)
	start, goal := grid.NodeAt(from), grid.NodeAt(to)
	if start == nil || goal == nil {
		return 0, false
	}
	if start == goal {
		return 0, true
	}
	start.Blocked, goal.Blocked = false, false

	_, distance, found := astar.Path(start, goal)
	return distance, found
}
