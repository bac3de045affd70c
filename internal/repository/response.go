package repository

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"gorm.io/gorm"
)

type ResponseRepo interface {
	ListResponses() ([]formbuilder.FormResponse, error)
	ListResponsesByFormID(formID uint) ([]formbuilder.FormResponse, error)
	GetResponseByID(id uint) (formbuilder.FormResponse, error)
	CreateResponse(resp *formbuilder.FormResponse) error
	SaveResponse(resp *formbuilder.FormResponse) error
	DeleteResponse(id uint) error
	DeleteResponsesByFormID(formID uint) error
	WithTx(tx *gorm.DB) ResponseRepo
}

type DBResponseRepo struct {
	db *gorm.DB
}

func NewResponseRepo(db *gorm.DB) *DBResponseRepo {
	return &DBResponseRepo{db: db}
}

func (r *DBResponseRepo) ListResponses() ([]formbuilder.FormResponse, error) {
	var responses []formbuilder.FormResponse
	err := r.db.Order("date_submitted desc").Find(&responses).Error
	return responses, err
}

func (r *DBResponseRepo) ListResponsesByFormID(formID uint) ([]formbuilder.FormResponse, error) {
	var responses []formbuilder.FormResponse
	err := r.db.Where("form_id = ?", formID).Order("date_submitted desc").Find(&responses).Error
	return responses, err
}

func (r *DBResponseRepo) GetResponseByID(id uint) (formbuilder.FormResponse, error) {
	var resp formbuilder.FormResponse
	if err := r.db.First(&resp, id).Error; err != nil {
		return resp, err
	}
	return resp, nil
}

func (r *DBResponseRepo) CreateResponse(resp *formbuilder.FormResponse) error {
	return r.db.Create(resp).Error
}

func (r *DBResponseRepo) SaveResponse(resp *formbuilder.FormResponse) error {
	return r.db.Save(resp).Error
}

func (r *DBResponseRepo) DeleteResponse(id uint) error {
	return r.db.Delete(&formbuilder.FormResponse{}, id).Error
}

func (r *DBResponseRepo) DeleteResponsesByFormID(formID uint) error {
	return r.db.Where("form_id = ?", formID).Delete(&formbuilder.FormResponse{}).Error
}

func (r *DBResponseRepo) WithTx(tx *gorm.DB) ResponseRepo {
	if tx == nil {
		return r
	}
	return &DBResponseRepo{db: tx}
}
