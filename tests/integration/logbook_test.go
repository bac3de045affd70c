package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntryBody struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Date             string `json:"date"`
	ConsultationType string `json:"consultation_type"`
}

func TestLogbookFlow(t *testing.T) {
	// Start from a clean logbook.
	doRequest(t, "DELETE", "/api/logbook/", "", nil, http.StatusNoContent)

	w := doRequest(t, "POST", "/api/logbook/", "", map[string]string{
		"name":              "Juan Dela Cruz",
		"date":              "2025-05-01",
		"consultation_type": "Immunization",
	}, http.StatusCreated)
	var created logEntryBody
	decodeBody(t, w, &created)
	assert.Equal(t, "2025-05-01", created.Date)
	assert.Equal(t, "Immunization", created.ConsultationType)

	// Omitted date defaults to today.
	w = doRequest(t, "POST", "/api/logbook/", "", map[string]string{
		"name": "Maria Santos",
	}, http.StatusCreated)
	decodeBody(t, w, &created)
	assert.Equal(t, time.Now().Format("2006-01-02"), created.Date)

	w = doRequest(t, "GET", "/api/logbook/", "", nil, http.StatusOK)
	var entries []logEntryBody
	decodeBody(t, w, &entries)
	require.Len(t, entries, 2)

	doRequest(t, "DELETE", "/api/logbook/", "", nil, http.StatusNoContent)

	w = doRequest(t, "GET", "/api/logbook/", "", nil, http.StatusOK)
	decodeBody(t, w, &entries)
	assert.Empty(t, entries)
}
