package city

// Tile is one cell of the grid. It owns at most one building.
type Tile struct {
	id       int
	x        int
	y        int
	building Building
}

func newTile(id, x, y int) *Tile {
	return &Tile{id: id, x: x, y: y}
}

func (t *Tile) ID() int            { return t.id }
func (t *Tile) X() int             { return t.x }
func (t *Tile) Y() int             { return t.y }
func (t *Tile) Point() Point       { return Point{X: t.x, Y: t.y} }
func (t *Tile) Building() Building { return t.building }
func (t *Tile) Occupied() bool     { return t.building != nil }

// SetBuilding swaps the occupant. Pass nil to clear the tile.
func (t *Tile) SetBuilding(b Building) {
	t.building = b
}

// DistanceTo is the Manhattan distance, which equals the hop count between
// tiles on the orthogonal grid.
func (t *Tile) DistanceTo(other *Tile) int {
	return abs(t.x-other.x) + abs(t.y-other.y)
}

func (t *Tile) Simulate(c *City) {
	if t.building == nil || t.building.Disposed() {
		return
	}
	t.building.Simulate(c)
}

func (t *Tile) RefreshView(c *City) {
	c.view.RefreshTile(c, t)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
