package formbuilder

import (
	"time"

	"gorm.io/datatypes"
)

type FormStatus string

const (
	FormStatusNotStarted  FormStatus = "Not Started"
	FormStatusInProgress  FormStatus = "In Progress"
	FormStatusUnderReview FormStatus = "Under Review"
	FormStatusCompleted   FormStatus = "Completed"
)

// ValidFormStatus reports whether s is one of the four workflow states.
func ValidFormStatus(s string) bool {
	switch FormStatus(s) {
	case FormStatusNotStarted, FormStatusInProgress, FormStatusUnderReview, FormStatusCompleted:
		return true
	}
	return false
}

// Template is a reusable schema definition from which forms may be derived.
// Deleting a template detaches its forms (template_id set to NULL).
type Template struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TemplateName string         `gorm:"size:255;not null" json:"templatename"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Schema       datatypes.JSON `gorm:"not null" json:"schema"`
	Description  string         `json:"description"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Forms        []Form         `gorm:"foreignKey:TemplateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

// Form is a concrete structured document with a workflow status. Deleting a
// form removes all of its responses.
type Form struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Schema      datatypes.JSON `gorm:"not null" json:"schema"`
	Description string         `json:"description"`
	Status      FormStatus     `gorm:"size:50;default:'Not Started'" json:"status"`
	TemplateID  *uint          `gorm:"index" json:"template"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Responses   []FormResponse `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// FormResponse is one submission against a form. Sender is a free-text label,
// not a user reference.
type FormResponse struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	FormID        uint           `gorm:"index;not null" json:"form"`
	ResponseData  datatypes.JSON `gorm:"not null" json:"response_data"`
	DateSubmitted time.Time      `gorm:"autoCreateTime" json:"date_submitted"`
	Sender        string         `gorm:"size:255" json:"sender"`
	Status        string         `gorm:"size:50;default:'pending'" json:"status"`
}
