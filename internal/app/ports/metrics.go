package ports

import "citybuilder/internal/domain/city"

type CityMetrics interface {
	RecordPlaced(t city.BuildingType)
	RecordBulldozed(t city.BuildingType)
	RecordRejected()
	RecordTicks(n int)
}
