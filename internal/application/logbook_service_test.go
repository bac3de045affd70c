package application

import (
	"testing"
	"time"

	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/logbook"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupLogbookServiceMocks(t *testing.T) (*LogbookService, *mock.MockLogEntryRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockLog := mock.NewMockLogEntryRepo(ctrl)
	repos := &repository.Repos{LogEntry: mockLog}
	svc := NewLogbookService(repos)
	return svc, mockLog
}

// --------------------- CreateEntry ---------------------
func TestCreateEntry_DefaultsDateToToday(t *testing.T) {
	svc, mockLog := setupLogbookServiceMocks(t)

	oldNow := Now
	Now = func() time.Time { return time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC) }
	defer func() { Now = oldNow }()

	mockLog.EXPECT().CreateLogEntry(gomock.Any()).DoAndReturn(func(entry *logbook.LogEntry) error {
		entry.ID = 1
		return nil
	})

	entry, err := svc.CreateEntry(logbook.CreateLogEntryInput{Name: "Juan Dela Cruz", ConsultationType: "Checkup"})
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-15", entry.Date)
	assert.Equal(t, "Checkup", entry.ConsultationType)
}

func TestCreateEntry_KeepsProvidedDate(t *testing.T) {
	svc, mockLog := setupLogbookServiceMocks(t)

	mockLog.EXPECT().CreateLogEntry(gomock.Any()).Return(nil)

	entry, err := svc.CreateEntry(logbook.CreateLogEntryInput{Name: "Maria Santos", Date: "2025-01-02"})
	assert.NoError(t, err)
	assert.Equal(t, "2025-01-02", entry.Date)
}

// --------------------- ClearAllEntries ---------------------
func TestClearAllEntries(t *testing.T) {
	svc, mockLog := setupLogbookServiceMocks(t)

	mockLog.EXPECT().DeleteAllLogEntries().Return(nil)

	assert.NoError(t, svc.ClearAllEntries())
}
