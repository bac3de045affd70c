package application

import (
	"errors"

	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"gorm.io/datatypes"
)

var (
	ErrFormNotFound      = errors.New("form not found")
	ErrInvalidFormStatus = errors.New("invalid status value")
)

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

func (s *FormService) ListForms() ([]formbuilder.Form, error) {
	return s.Repos.Form.ListForms()
}

func (s *FormService) FindFormByID(id uint) (formbuilder.Form, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return formbuilder.Form{}, ErrFormNotFound
	}
	return f, nil
}

func (s *FormService) CreateForm(input formbuilder.CreateFormInput) (formbuilder.Form, error) {
	status := formbuilder.FormStatusNotStarted
	if input.Status != "" {
		if !formbuilder.ValidFormStatus(input.Status) {
			return formbuilder.Form{}, ErrInvalidFormStatus
		}
		status = formbuilder.FormStatus(input.Status)
	}

	f := formbuilder.Form{
		Title:       input.Title,
		Schema:      datatypes.JSON(input.Schema),
		Description: input.Description,
		Status:      status,
		TemplateID:  input.TemplateID,
	}
	return f, s.Repos.Form.CreateForm(&f)
}

func (s *FormService) UpdateForm(id uint, input formbuilder.UpdateFormInput) (formbuilder.Form, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return formbuilder.Form{}, ErrFormNotFound
	}

	if input.Title != nil {
		f.Title = *input.Title
	}
	if len(input.Schema) > 0 {
		f.Schema = datatypes.JSON(input.Schema)
	}
	if input.Description != nil {
		f.Description = *input.Description
	}
	if input.Status != nil {
		if !formbuilder.ValidFormStatus(*input.Status) {
			return formbuilder.Form{}, ErrInvalidFormStatus
		}
		f.Status = formbuilder.FormStatus(*input.Status)
	}
	if input.TemplateID != nil {
		f.TemplateID = input.TemplateID
	}

	if err := s.Repos.Form.SaveForm(&f); err != nil {
		return formbuilder.Form{}, err
	}
	return f, nil
}

func (s *FormService) UpdateFormStatus(id uint, status string) (formbuilder.Form, error) {
	if !formbuilder.ValidFormStatus(status) {
		return formbuilder.Form{}, ErrInvalidFormStatus
	}

	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return formbuilder.Form{}, ErrFormNotFound
	}
	f.Status = formbuilder.FormStatus(status)
	if err := s.Repos.Form.SaveForm(&f); err != nil {
		return formbuilder.Form{}, err
	}
	return f, nil
}

// DeleteForm removes the form together with all of its responses.
func (s *FormService) DeleteForm(id uint) error {
	if _, err := s.Repos.Form.GetFormByID(id); err != nil {
		return ErrFormNotFound
	}
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Response.DeleteResponsesByFormID(id); err != nil {
			return err
		}
		return tx.Form.DeleteForm(id)
	})
}
