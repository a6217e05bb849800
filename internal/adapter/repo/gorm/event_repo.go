package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"citybuilder/internal/adapter/repo/gorm/model"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepo is the Postgres-backed city event journal.
type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, cityID string, events []city.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.CityEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", e.Type, err)
		}
		rows = append(rows, model.CityEvent{
			CityID:     cityID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r EventRepo) ListByCityID(ctx context.Context, cityID string, limit int) ([]city.DomainEvent, error) {
	rows := []model.CityEvent{}
	query := r.db.WithContext(ctx).
		Where(&model.CityEvent{CityID: cityID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]city.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			if err := json.Unmarshal(row.Payload, &payload); err != nil {
				return nil, fmt.Errorf("decode %s payload of event %d: %w", row.Type, row.ID, err)
			}
		}
		out = append(out, city.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
