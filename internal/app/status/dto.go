package status

import "citybuilder/internal/app/cityview"

type Request struct {
	CityID string
}

type Response struct {
	CityID       string           `json:"city_id"`
	Summary      cityview.Summary `json:"summary"`
	OccupiedKeys []string         `json:"occupied_keys"`
}
