package cityview

import "citybuilder/internal/domain/city"

type BuildingView struct {
	Type        city.BuildingType     `json:"type"`
	Status      city.Status           `json:"status"`
	HideTerrain bool                  `json:"hide_terrain"`
	Style       string                `json:"style,omitempty"`
	Rotation    int                   `json:"rotation"`
	Description string                `json:"description"`
	Roads       *city.RoadConnections `json:"roads,omitempty"`
}

type TileView struct {
	ID       int           `json:"id"`
	X        int           `json:"x"`
	Y        int           `json:"y"`
	Occupied bool          `json:"occupied"`
	Building *BuildingView `json:"building,omitempty"`
}

type Summary struct {
	Name      string         `json:"name"`
	Size      int            `json:"size"`
	SimTime   uint64         `json:"sim_time"`
	Economy   city.Economy   `json:"economy"`
	Occupied  int            `json:"occupied"`
	Buildings map[string]int `json:"buildings"`
}

func Tile(c *city.City, t *city.Tile) TileView {
	out := TileView{
		ID:       t.ID(),
		X:        t.X(),
		Y:        t.Y(),
		Occupied: t.Occupied(),
	}
	if b := t.Building(); b != nil {
		out.Building = building(c, b)
	}
	return out
}

func Tiles(c *city.City, tiles []*city.Tile) []TileView {
	out := make([]TileView, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, Tile(c, t))
	}
	return out
}

func building(c *city.City, b city.Building) *BuildingView {
	view := &BuildingView{
		Type:        b.Type(),
		Status:      b.Status(),
		HideTerrain: b.HideTerrain(),
		Description: b.Describe(),
	}
	switch v := b.(type) {
	case *city.Zone:
		view.Style = v.Style
		view.Rotation = v.Rotation
	case *city.Road:
		roads := v.Connections(c)
		view.Roads = &roads
	}
	return view
}

func Summarize(c *city.City) Summary {
	counts := map[string]int{}
	for _, bt := range c.BuildingList() {
		counts[string(bt)]++
	}
	return Summary{
		Name:      c.Name(),
		Size:      c.Size(),
		SimTime:   c.SimTime(),
		Economy:   c.Economy(),
		Occupied:  c.OccupiedCount(),
		Buildings: counts,
	}
}
