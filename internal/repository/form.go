package repository

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"gorm.io/gorm"
)

type FormRepo interface {
	ListForms() ([]formbuilder.Form, error)
	ListFormsByTemplateID(templateID uint) ([]formbuilder.Form, error)
	GetFormByID(id uint) (formbuilder.Form, error)
	CreateForm(f *formbuilder.Form) error
	SaveForm(f *formbuilder.Form) error
	DeleteForm(id uint) error
	DetachFormsFromTemplate(templateID uint) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) ListForms() ([]formbuilder.Form, error) {
	var forms []formbuilder.Form
	err := r.db.Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) ListFormsByTemplateID(templateID uint) ([]formbuilder.Form, error) {
	var forms []formbuilder.Form
	err := r.db.Where("template_id = ?", templateID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) GetFormByID(id uint) (formbuilder.Form, error) {
	var f formbuilder.Form
	if err := r.db.First(&f, id).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFormRepo) CreateForm(f *formbuilder.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) SaveForm(f *formbuilder.Form) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) DeleteForm(id uint) error {
	return r.db.Delete(&formbuilder.Form{}, id).Error
}

// DetachFormsFromTemplate clears the template reference on all forms derived
// from the template, leaving the forms themselves intact.
func (r *DBFormRepo) DetachFormsFromTemplate(templateID uint) error {
	return r.db.Model(&formbuilder.Form{}).
		Where("template_id = ?", templateID).
		Update("template_id", nil).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{db: tx}
}
