package repo

import "time"

// Record is the contract every persisted entity satisfies. Models embed
// Base to get it.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	StampCreated(t time.Time)
	StampUpdated(t time.Time)
}

// Base carries the identity and timestamp columns shared by all tables.
// CreatedAt is set once at creation and never mutated afterwards;
// UpdatedAt is refreshed on every update.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Base) RecordID() string {
	return b.ID
}

func (b *Base) SetRecordID(id string) {
	b.ID = id
}

func (b *Base) StampCreated(t time.Time) {
	b.CreatedAt = t
}

func (b *Base) StampUpdated(t time.Time) {
	b.UpdatedAt = t
}
