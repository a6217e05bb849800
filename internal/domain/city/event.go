package city

import "time"

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventCityCreated       = "city_created"
	EventBuildingPlaced    = "building_placed"
	EventBuildingBulldozed = "building_bulldozed"
	EventCityTicked        = "city_ticked"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
