package city

// TileFilter reports whether a tile satisfies a search.
type TileFilter func(t *Tile) bool

// FindTile searches breadth-first from start and returns the first tile that
// passes filter, or nil. Tiles further than maxDistance from start are skipped
// and not expanded. Neighbours are enqueued west, east, north, south, so among
// equally near matches the earliest enqueued wins.
func (c *City) FindTile(start Point, filter TileFilter, maxDistance int) *Tile {
	startTile := c.Tile(start.X, start.Y)
	if startTile == nil || filter == nil {
		return nil
	}

	visited := make(map[int]struct{})
	queue := []*Tile{startTile}

	for len(queue) > 0 {
		tile := queue[0]
		queue = queue[1:]

		if _, seen := visited[tile.id]; seen {
			continue
		}
		visited[tile.id] = struct{}{}

		if startTile.DistanceTo(tile) > maxDistance {
			continue
		}

		queue = append(queue, c.TileNeighbors(tile.x, tile.y)...)

		if filter(tile) {
			return tile
		}
	}
	return nil
}

func EmptyTile(t *Tile) bool {
	return !t.Occupied()
}

func OccupiedTile(t *Tile) bool {
	return t.Occupied()
}

func TileWithType(bt BuildingType) TileFilter {
	return func(t *Tile) bool {
		b := t.Building()
		return b != nil && b.Type() == bt
	}
}
