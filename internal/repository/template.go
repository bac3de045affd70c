package repository

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"gorm.io/gorm"
)

type TemplateRepo interface {
	ListTemplates() ([]formbuilder.Template, error)
	GetTemplateByID(id uint) (formbuilder.Template, error)
	CreateTemplate(t *formbuilder.Template) error
	SaveTemplate(t *formbuilder.Template) error
	DeleteTemplate(id uint) error
	WithTx(tx *gorm.DB) TemplateRepo
}

type DBTemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) *DBTemplateRepo {
	return &DBTemplateRepo{db: db}
}

func (r *DBTemplateRepo) ListTemplates() ([]formbuilder.Template, error) {
	var templates []formbuilder.Template
	err := r.db.Order("created_at desc").Find(&templates).Error
	return templates, err
}

func (r *DBTemplateRepo) GetTemplateByID(id uint) (formbuilder.Template, error) {
	var t formbuilder.Template
	if err := r.db.First(&t, id).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTemplateRepo) CreateTemplate(t *formbuilder.Template) error {
	return r.db.Create(t).Error
}

func (r *DBTemplateRepo) SaveTemplate(t *formbuilder.Template) error {
	return r.db.Save(t).Error
}

func (r *DBTemplateRepo) DeleteTemplate(id uint) error {
	return r.db.Delete(&formbuilder.Template{}, id).Error
}

func (r *DBTemplateRepo) WithTx(tx *gorm.DB) TemplateRepo {
	if tx == nil {
		return r
	}
	return &DBTemplateRepo{db: tx}
}
