package model

import "time"

const TableNameCityEvent = "city_events"

// CityEvent maps table city_events. Regenerate with tools/modelgen.
type CityEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	CityID     string    `gorm:"column:city_id;not null" json:"city_id"`
	Type       string    `gorm:"column:type;not null" json:"type"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null" json:"occurred_at"`
	Payload    []byte    `gorm:"column:payload;type:jsonb" json:"payload"`
}

func (*CityEvent) TableName() string {
	return TableNameCityEvent
}
