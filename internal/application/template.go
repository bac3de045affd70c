package application

import (
	"errors"

	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"gorm.io/datatypes"
)

var ErrTemplateNotFound = errors.New("template not found")

type TemplateService struct {
	Repos *repository.Repos
}

func NewTemplateService(repos *repository.Repos) *TemplateService {
	return &TemplateService{Repos: repos}
}

func (s *TemplateService) ListTemplates() ([]formbuilder.Template, error) {
	return s.Repos.Template.ListTemplates()
}

func (s *TemplateService) FindTemplateByID(id uint) (formbuilder.Template, error) {
	t, err := s.Repos.Template.GetTemplateByID(id)
	if err != nil {
		return formbuilder.Template{}, ErrTemplateNotFound
	}
	return t, nil
}

func (s *TemplateService) CreateTemplate(input formbuilder.CreateTemplateInput) (formbuilder.Template, error) {
	t := formbuilder.Template{
		TemplateName: input.TemplateName,
		Title:        input.Title,
		Schema:       datatypes.JSON(input.Schema),
		Description:  input.Description,
	}
	return t, s.Repos.Template.CreateTemplate(&t)
}

func (s *TemplateService) UpdateTemplate(id uint, input formbuilder.UpdateTemplateInput) (formbuilder.Template, error) {
	t, err := s.Repos.Template.GetTemplateByID(id)
	if err != nil {
		return formbuilder.Template{}, ErrTemplateNotFound
	}

	if input.TemplateName != nil {
		t.TemplateName = *input.TemplateName
	}
	if input.Title != nil {
		t.Title = *input.Title
	}
	if len(input.Schema) > 0 {
		t.Schema = datatypes.JSON(input.Schema)
	}
	if input.Description != nil {
		t.Description = *input.Description
	}

	if err := s.Repos.Template.SaveTemplate(&t); err != nil {
		return formbuilder.Template{}, err
	}
	return t, nil
}

// DeleteTemplate detaches dependent forms before removing the template; the
// forms survive with an empty template reference.
func (s *TemplateService) DeleteTemplate(id uint) error {
	if _, err := s.Repos.Template.GetTemplateByID(id); err != nil {
		return ErrTemplateNotFound
	}
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.DetachFormsFromTemplate(id); err != nil {
			return err
		}
		return tx.Template.DeleteTemplate(id)
	})
}

func (s *TemplateService) ListFormsForTemplate(templateID uint) ([]formbuilder.Form, error) {
	if _, err := s.Repos.Template.GetTemplateByID(templateID); err != nil {
		return nil, ErrTemplateNotFound
	}
	return s.Repos.Form.ListFormsByTemplateID(templateID)
}
