package repository

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/logbook"
	"gorm.io/gorm"
)

type LogEntryRepo interface {
	ListLogEntries() ([]logbook.LogEntry, error)
	CreateLogEntry(entry *logbook.LogEntry) error
	DeleteAllLogEntries() error
	WithTx(tx *gorm.DB) LogEntryRepo
}

type DBLogEntryRepo struct {
	db *gorm.DB
}

func NewLogEntryRepo(db *gorm.DB) *DBLogEntryRepo {
	return &DBLogEntryRepo{db: db}
}

func (r *DBLogEntryRepo) ListLogEntries() ([]logbook.LogEntry, error) {
	var entries []logbook.LogEntry
	err := r.db.Order("date desc, created_at desc").Find(&entries).Error
	return entries, err
}

func (r *DBLogEntryRepo) CreateLogEntry(entry *logbook.LogEntry) error {
	return r.db.Create(entry).Error
}

func (r *DBLogEntryRepo) DeleteAllLogEntries() error {
	return r.db.Where("1 = 1").Delete(&logbook.LogEntry{}).Error
}

func (r *DBLogEntryRepo) WithTx(tx *gorm.DB) LogEntryRepo {
	if tx == nil {
		return r
	}
	return &DBLogEntryRepo{db: tx}
}
