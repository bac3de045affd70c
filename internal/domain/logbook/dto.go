package logbook

type CreateLogEntryInput struct {
	Name             string `json:"name" binding:"required"`
	Date             string `json:"date"`
	ConsultationType string `json:"consultation_type"`
}
