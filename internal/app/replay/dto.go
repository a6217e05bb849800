package replay

import "citybuilder/internal/domain/city"

type Request struct {
	CityID       string
	Limit        int
	Type         string
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events []city.DomainEvent `json:"events"`
	Latest LatestEconomy      `json:"latest"`
}

// LatestEconomy is the most recent tick snapshot found in the events.
type LatestEconomy struct {
	Found   bool         `json:"found"`
	SimTime uint64       `json:"sim_time"`
	Economy city.Economy `json:"economy"`
}
