package inmemory

import (
	"sync"

	"citybuilder/internal/domain/city"
)

type Snapshot struct {
	BuildTotal   uint64            `json:"build_total"`
	Placed       uint64            `json:"placed"`
	Bulldozed    uint64            `json:"bulldozed"`
	Rejected     uint64            `json:"rejected"`
	Ticks        uint64            `json:"ticks"`
	PlacedByType map[string]uint64 `json:"placed_by_type"`
	TileRefresh  uint64            `json:"tile_refresh"`
	Released     uint64            `json:"released"`
}

type Recorder struct {
	mu        sync.Mutex
	placed    uint64
	bulldozed uint64
	rejected  uint64
	ticks     uint64
	byType    map[string]uint64
	refreshed uint64
	released  uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byType: map[string]uint64{},
	}
}

func (r *Recorder) RecordPlaced(t city.BuildingType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placed++
	r.byType[string(t)]++
}

func (r *Recorder) RecordBulldozed(_ city.BuildingType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bulldozed++
}

func (r *Recorder) RecordRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func (r *Recorder) RecordTicks(n int) {
	if n <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks += uint64(n)
}

// RefreshTile and ReleaseBuilding let the recorder stand in as the city view,
// so presentation churn shows up next to the build counters.
func (r *Recorder) RefreshTile(_ *city.City, _ *city.Tile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshed++
}

func (r *Recorder) ReleaseBuilding(_ city.Building) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Placed:       r.placed,
		Bulldozed:    r.bulldozed,
		Rejected:     r.rejected,
		BuildTotal:   r.placed + r.bulldozed + r.rejected,
		Ticks:        r.ticks,
		TileRefresh:  r.refreshed,
		Released:     r.released,
		PlacedByType: make(map[string]uint64, len(r.byType)),
	}
	for k, v := range r.byType {
		out.PlacedByType[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
