package application

import (
	"testing"

	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupTemplateServiceMocks(t *testing.T) (*TemplateService, *mock.MockTemplateRepo, *mock.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTemplate := mock.NewMockTemplateRepo(ctrl)
	mockForm := mock.NewMockFormRepo(ctrl)
	repos := &repository.Repos{
		Template: mockTemplate,
		Form:     mockForm,
	}
	svc := NewTemplateService(repos)
	return svc, mockTemplate, mockForm
}

// --------------------- CreateTemplate ---------------------
func TestCreateTemplate_Success(t *testing.T) {
	svc, mockTemplate, _ := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().CreateTemplate(gomock.Any()).DoAndReturn(func(tpl *formbuilder.Template) error {
		tpl.ID = 1
		return nil
	})

	tpl, err := svc.CreateTemplate(formbuilder.CreateTemplateInput{
		TemplateName: "Immunization",
		Title:        "Immunization Record",
		Schema:       []byte(`{"fields":[]}`),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Immunization", tpl.TemplateName)
}

// --------------------- UpdateTemplate ---------------------
func TestUpdateTemplate_PartialUpdate(t *testing.T) {
	svc, mockTemplate, _ := setupTemplateServiceMocks(t)

	existing := formbuilder.Template{ID: 1, TemplateName: "Old", Title: "Keep"}
	mockTemplate.EXPECT().GetTemplateByID(uint(1)).Return(existing, nil)
	mockTemplate.EXPECT().SaveTemplate(gomock.Any()).Return(nil)

	newName := "New"
	tpl, err := svc.UpdateTemplate(1, formbuilder.UpdateTemplateInput{TemplateName: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "New", tpl.TemplateName)
	assert.Equal(t, "Keep", tpl.Title)
}

func TestUpdateTemplate_NotFound(t *testing.T) {
	svc, mockTemplate, _ := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().GetTemplateByID(uint(9)).Return(formbuilder.Template{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateTemplate(9, formbuilder.UpdateTemplateInput{})
	assert.Equal(t, ErrTemplateNotFound, err)
}

// --------------------- DeleteTemplate ---------------------
func TestDeleteTemplate_DetachesFormsFirst(t *testing.T) {
	svc, mockTemplate, mockForm := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().GetTemplateByID(uint(1)).Return(formbuilder.Template{ID: 1}, nil)
	gomock.InOrder(
		mockForm.EXPECT().DetachFormsFromTemplate(uint(1)).Return(nil),
		mockTemplate.EXPECT().DeleteTemplate(uint(1)).Return(nil),
	)

	assert.NoError(t, svc.DeleteTemplate(1))
}

func TestDeleteTemplate_NotFound(t *testing.T) {
	svc, mockTemplate, _ := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().GetTemplateByID(uint(2)).Return(formbuilder.Template{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrTemplateNotFound, svc.DeleteTemplate(2))
}

// --------------------- ListFormsForTemplate ---------------------
func TestListFormsForTemplate_UnknownTemplate(t *testing.T) {
	svc, mockTemplate, _ := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().GetTemplateByID(uint(5)).Return(formbuilder.Template{}, gorm.ErrRecordNotFound)

	_, err := svc.ListFormsForTemplate(5)
	assert.Equal(t, ErrTemplateNotFound, err)
}

func TestListFormsForTemplate_Success(t *testing.T) {
	svc, mockTemplate, mockForm := setupTemplateServiceMocks(t)

	templateID := uint(5)
	mockTemplate.EXPECT().GetTemplateByID(templateID).Return(formbuilder.Template{ID: templateID}, nil)
	mockForm.EXPECT().ListFormsByTemplateID(templateID).Return([]formbuilder.Form{{ID: 1, TemplateID: &templateID}}, nil)

	forms, err := svc.ListFormsForTemplate(templateID)
	assert.NoError(t, err)
	assert.Len(t, forms, 1)
}
