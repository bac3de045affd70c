package logbook

import "time"

// LogEntry is an append-only clinic logbook row. Entries are never updated
// individually; the whole book can be cleared at once.
type LogEntry struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Date             string    `gorm:"size:10;not null" json:"date"`
	ConsultationType string    `gorm:"size:255" json:"consultation_type"`
	CreatedAt        time.Time `json:"created_at"`
}
