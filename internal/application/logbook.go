package application

import (
	"time"

	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/logbook"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
)

type LogbookService struct {
	Repos *repository.Repos
}

func NewLogbookService(repos *repository.Repos) *LogbookService {
	return &LogbookService{Repos: repos}
}

// Now is stubbed in tests that pin the default entry date.
var Now = time.Now

func (s *LogbookService) CreateEntry(input logbook.CreateLogEntryInput) (logbook.LogEntry, error) {
	date := input.Date
	if date == "" {
		date = Now().Format("2006-01-02")
	}

	entry := logbook.LogEntry{
		Name:             input.Name,
		Date:             date,
		ConsultationType: input.ConsultationType,
	}
	return entry, s.Repos.LogEntry.CreateLogEntry(&entry)
}

func (s *LogbookService) ListEntries() ([]logbook.LogEntry, error) {
	return s.Repos.LogEntry.ListLogEntries()
}

func (s *LogbookService) ClearAllEntries() error {
	return s.Repos.LogEntry.DeleteAllLogEntries()
}
