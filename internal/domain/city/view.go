package city

// View is the presentation collaborator. The core calls it but never depends
// on what it does.
type View interface {
	RefreshTile(c *City, t *Tile)
	ReleaseBuilding(b Building)
}

type NopView struct{}

func (NopView) RefreshTile(_ *City, _ *Tile) {}
func (NopView) ReleaseBuilding(_ Building)   {}
