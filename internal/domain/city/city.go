package city

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var (
	ErrInvalidSize  = errors.New("invalid city size")
	ErrOutOfBounds  = errors.New("coordinates out of bounds")
	ErrTileOccupied = errors.New("tile already occupied")
	ErrTileEmpty    = errors.New("tile has no building")
	ErrBadBuilding  = errors.New("factory returned an unusable building")
)

const (
	DefaultName     = "My City"
	InitialBuilding = BuildingCommercial
)

type Config struct {
	Size    int
	Name    string
	Tuning  Tuning
	Factory Factory
	View    View
	Rand    *rand.Rand
}

// City owns the square tile grid and the economy counters. It is not safe
// for concurrent use; callers serialise access.
type City struct {
	size     int
	name     string
	tiles    [][]*Tile
	occupied map[Point]struct{}
	economy  Economy
	simTime  uint64

	tuning  Tuning
	factory Factory
	view    View
	rng     *rand.Rand
}

// NewCity builds every tile eagerly and places the initial building at the
// centre of the grid.
func NewCity(cfg Config) (*City, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Size)
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Tuning == (Tuning{}) {
		cfg.Tuning = DefaultTuning()
	}
	if !cfg.Tuning.GrowthBuilding.Valid() {
		return nil, fmt.Errorf("growth building: %w: %q", ErrUnknownBuildingType, string(cfg.Tuning.GrowthBuilding))
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	if cfg.Factory == nil {
		cfg.Factory = NewFactory(cfg.Rand)
	}
	if cfg.View == nil {
		cfg.View = NopView{}
	}

	c := &City{
		size:     cfg.Size,
		name:     cfg.Name,
		occupied: make(map[Point]struct{}),
		economy:  cfg.Tuning.Initial,
		tuning:   cfg.Tuning,
		factory:  cfg.Factory,
		view:     cfg.View,
		rng:      cfg.Rand,
	}

	c.tiles = make([][]*Tile, c.size)
	for x := 0; x < c.size; x++ {
		column := make([]*Tile, c.size)
		for y := 0; y < c.size; y++ {
			t := newTile(x*c.size+y, x, y)
			column[y] = t
		}
		c.tiles[x] = column
	}
	for x := 0; x < c.size; x++ {
		for y := 0; y < c.size; y++ {
			c.tiles[x][y].RefreshView(c)
		}
	}

	center := c.size / 2
	if _, err := c.PlaceBuilding(center, center, InitialBuilding); err != nil {
		return nil, fmt.Errorf("place initial building: %w", err)
	}
	return c, nil
}

func (c *City) Size() int        { return c.size }
func (c *City) Name() string     { return c.name }
func (c *City) Economy() Economy { return c.economy }
func (c *City) SimTime() uint64  { return c.simTime }
func (c *City) Tuning() Tuning   { return c.tuning }

func (c *City) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.size && y < c.size
}

// Tile returns nil when (x, y) is outside the grid.
func (c *City) Tile(x, y int) *Tile {
	if !c.InBounds(x, y) {
		return nil
	}
	return c.tiles[x][y]
}

// TileNeighbors returns the orthogonal neighbours in the fixed order
// west, east, north, south, clipped at the grid edge.
func (c *City) TileNeighbors(x, y int) []*Tile {
	if !c.InBounds(x, y) {
		return nil
	}
	neighbors := make([]*Tile, 0, 4)
	if x > 0 {
		neighbors = append(neighbors, c.tiles[x-1][y])
	}
	if x < c.size-1 {
		neighbors = append(neighbors, c.tiles[x+1][y])
	}
	if y > 0 {
		neighbors = append(neighbors, c.tiles[x][y-1])
	}
	if y < c.size-1 {
		neighbors = append(neighbors, c.tiles[x][y+1])
	}
	return neighbors
}

func (c *City) IsOccupied(x, y int) bool {
	_, ok := c.occupied[Point{X: x, Y: y}]
	return ok
}

func (c *City) OccupiedCount() int {
	return len(c.occupied)
}

// OccupiedKeys returns the occupied coordinates as sorted "x,y" keys.
func (c *City) OccupiedKeys() []string {
	keys := make([]string, 0, len(c.occupied))
	for p := range c.occupied {
		keys = append(keys, fmt.Sprintf("%d,%d", p.X, p.Y))
	}
	sort.Strings(keys)
	return keys
}

// PlaceBuilding puts a new building on an empty tile. On error the city is
// unchanged.
func (c *City) PlaceBuilding(x, y int, t BuildingType) (Building, error) {
	tile := c.Tile(x, y)
	if tile == nil {
		return nil, ErrOutOfBounds
	}
	if tile.Occupied() {
		return nil, ErrTileOccupied
	}
	b, err := c.factory(x, y, t)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: nil for %q at (%d,%d)", ErrBadBuilding, string(t), x, y)
	}
	if pos := b.Position(); pos != tile.Point() {
		return nil, fmt.Errorf("%w: positioned at %v for tile %v", ErrBadBuilding, pos, tile.Point())
	}

	tile.SetBuilding(b)
	c.occupied[tile.Point()] = struct{}{}
	c.refreshAround(tile)
	return b, nil
}

// Bulldoze disposes and removes the building at (x, y), returning it.
func (c *City) Bulldoze(x, y int) (Building, error) {
	tile := c.Tile(x, y)
	if tile == nil {
		return nil, ErrOutOfBounds
	}
	b := tile.Building()
	if b == nil {
		return nil, ErrTileEmpty
	}

	b.Dispose()
	c.view.ReleaseBuilding(b)
	tile.SetBuilding(nil)
	delete(c.occupied, tile.Point())
	c.refreshAround(tile)
	return b, nil
}

func (c *City) refreshAround(tile *Tile) {
	tile.RefreshView(c)
	for _, n := range c.TileNeighbors(tile.x, tile.y) {
		n.RefreshView(c)
	}
}

// BuildingList returns the type of every placed building in row-major order.
// It is derived from the grid on each call, never stored.
func (c *City) BuildingList() []BuildingType {
	out := make([]BuildingType, 0, len(c.occupied))
	for x := 0; x < c.size; x++ {
		for y := 0; y < c.size; y++ {
			if b := c.tiles[x][y].Building(); b != nil {
				out = append(out, b.Type())
			}
		}
	}
	return out
}
