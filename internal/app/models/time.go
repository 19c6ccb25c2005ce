package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt(now time.Time) {
	m.CreatedAt = now.UTC()
	m.UpdatedAt = now.UTC()
}

func (m *TimeModel) SetUpdatedAt(now time.Time) {
	m.UpdatedAt = now.UTC()
}
