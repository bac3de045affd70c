package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/JMacalaguing/DynaHCare-V2/internal/config"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"gorm.io/datatypes"
)

var (
	ErrResponseNotFound       = errors.New("response not found")
	ErrMissingResponseData    = errors.New("response data is required")
	ErrIncompleteImmunization = errors.New("immunization record requires Name, Age, Sex, Vaccine and Date")
)

type ResponseService struct {
	Repos *repository.Repos
}

func NewResponseService(repos *repository.Repos) *ResponseService {
	return &ResponseService{Repos: repos}
}

func (s *ResponseService) ListResponses(formID *uint) ([]formbuilder.FormResponse, error) {
	if formID != nil {
		return s.Repos.Response.ListResponsesByFormID(*formID)
	}
	return s.Repos.Response.ListResponses()
}

// ResponsesForForm returns the responses of a form; an unknown or empty form
// yields an empty list, not an error.
func (s *ResponseService) ResponsesForForm(formID uint) ([]formbuilder.FormResponse, error) {
	return s.Repos.Response.ListResponsesByFormID(formID)
}

func (s *ResponseService) FindResponseByID(id uint) (formbuilder.FormResponse, error) {
	resp, err := s.Repos.Response.GetResponseByID(id)
	if err != nil {
		return formbuilder.FormResponse{}, ErrResponseNotFound
	}
	return resp, nil
}

func (s *ResponseService) CreateResponse(input formbuilder.CreateResponseInput) (formbuilder.FormResponse, error) {
	if _, err := s.Repos.Form.GetFormByID(input.FormID); err != nil {
		return formbuilder.FormResponse{}, ErrFormNotFound
	}
	resp, _, err := s.createResponse(input.FormID, input.ResponseData, input.Sender)
	return resp, err
}

func (s *ResponseService) DeleteResponse(id uint) error {
	if _, err := s.Repos.Response.GetResponseByID(id); err != nil {
		return ErrResponseNotFound
	}
	return s.Repos.Response.DeleteResponse(id)
}

func (s *ResponseService) ClearResponses(formID uint) error {
	if _, err := s.Repos.Form.GetFormByID(formID); err != nil {
		return ErrFormNotFound
	}
	return s.Repos.Response.DeleteResponsesByFormID(formID)
}

// UpdateResponseData replaces the stored payload wholesale.
func (s *ResponseService) UpdateResponseData(id uint, data map[string]any) (formbuilder.FormResponse, error) {
	if len(data) == 0 {
		return formbuilder.FormResponse{}, ErrMissingResponseData
	}
	resp, err := s.Repos.Response.GetResponseByID(id)
	if err != nil {
		return formbuilder.FormResponse{}, ErrResponseNotFound
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return formbuilder.FormResponse{}, err
	}
	resp.ResponseData = datatypes.JSON(payload)
	if err := s.Repos.Response.SaveResponse(&resp); err != nil {
		return formbuilder.FormResponse{}, err
	}
	return resp, nil
}

// SubmitResponse stores a submission for the form. The designated immunization
// form merges submissions per patient instead of appending; every other form
// stores the payload verbatim. The boolean reports whether a new record was
// created (false means an existing one was merged into).
func (s *ResponseService) SubmitResponse(formID uint, input formbuilder.SubmitResponseInput) (formbuilder.FormResponse, bool, error) {
	if _, err := s.Repos.Form.GetFormByID(formID); err != nil {
		return formbuilder.FormResponse{}, false, ErrFormNotFound
	}
	if len(input.ResponseData) == 0 {
		return formbuilder.FormResponse{}, false, ErrMissingResponseData
	}

	if formID == config.ImmunizationFormID {
		return s.submitImmunization(formID, input)
	}
	return s.createResponse(formID, input.ResponseData, input.Sender)
}

// submitImmunization upserts by the (Name, Age, Sex) natural key: a matching
// record accumulates {name, date} vaccine entries, a miss creates a normalized
// record. The scan below is a plain lookup-then-write; two concurrent
// submissions for the same patient can both miss the match and create
// divergent records.
func (s *ResponseService) submitImmunization(formID uint, input formbuilder.SubmitResponseInput) (formbuilder.FormResponse, bool, error) {
	imm, ok := input.ResponseData["Immunization"].(map[string]any)
	if !ok {
		return formbuilder.FormResponse{}, false, ErrIncompleteImmunization
	}
	for _, field := range []string{"Name", "Age", "Sex", "Vaccine", "Date"} {
		if _, ok := imm[field]; !ok {
			return formbuilder.FormResponse{}, false, ErrIncompleteImmunization
		}
	}

	vaccine := fmt.Sprint(imm["Vaccine"])
	date := imm["Date"]

	existing, err := s.Repos.Response.ListResponsesByFormID(formID)
	if err != nil {
		return formbuilder.FormResponse{}, false, err
	}

	for i := range existing {
		var stored map[string]any
		if err := json.Unmarshal(existing[i].ResponseData, &stored); err != nil {
			continue
		}
		rec, ok := stored["Immunization"].(map[string]any)
		if !ok {
			continue
		}
		if !reflect.DeepEqual(rec["Name"], imm["Name"]) ||
			!reflect.DeepEqual(rec["Age"], imm["Age"]) ||
			!reflect.DeepEqual(rec["Sex"], imm["Sex"]) {
			continue
		}

		entries := vaccineEntries(rec["Vaccine"])
		updated := false
		for _, e := range entries {
			if em, ok := e.(map[string]any); ok && em["name"] == vaccine {
				em["date"] = date
				updated = true
				break
			}
		}
		if !updated {
			entries = append(entries, map[string]any{"name": vaccine, "date": date})
		}
		rec["Vaccine"] = entries
		delete(rec, "Date")

		payload, err := json.Marshal(stored)
		if err != nil {
			return formbuilder.FormResponse{}, false, err
		}
		existing[i].ResponseData = datatypes.JSON(payload)
		if err := s.Repos.Response.SaveResponse(&existing[i]); err != nil {
			return formbuilder.FormResponse{}, false, err
		}
		return existing[i], false, nil
	}

	// First submission for this patient: the Date field is only a carrier for
	// the initial vaccine entry.
	imm["Vaccine"] = []any{map[string]any{"name": vaccine, "date": date}}
	delete(imm, "Date")
	return s.createResponse(formID, input.ResponseData, input.Sender)
}

func (s *ResponseService) createResponse(formID uint, data map[string]any, sender string) (formbuilder.FormResponse, bool, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return formbuilder.FormResponse{}, false, err
	}
	resp := formbuilder.FormResponse{
		FormID:       formID,
		ResponseData: datatypes.JSON(payload),
		Sender:       sender,
		Status:       "pending",
	}
	return resp, true, s.Repos.Response.CreateResponse(&resp)
}

// vaccineEntries coerces a stored Vaccine value to a list of entries; any
// malformed shape becomes an empty list.
func vaccineEntries(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return nil
}
