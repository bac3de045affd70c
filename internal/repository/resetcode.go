package repository

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"
	"gorm.io/gorm"
)

type ResetCodeRepo interface {
	CreateResetCode(code *account.PasswordResetCode) error
	GetResetCode(userID uint, code string) (account.PasswordResetCode, error)
	DeleteResetCode(id uint) error
	WithTx(tx *gorm.DB) ResetCodeRepo
}

type DBResetCodeRepo struct {
	db *gorm.DB
}

func NewResetCodeRepo(db *gorm.DB) *DBResetCodeRepo {
	return &DBResetCodeRepo{db: db}
}

func (r *DBResetCodeRepo) CreateResetCode(code *account.PasswordResetCode) error {
	return r.db.Create(code).Error
}

func (r *DBResetCodeRepo) GetResetCode(userID uint, code string) (account.PasswordResetCode, error) {
	var rc account.PasswordResetCode
	err := r.db.Where("user_id = ? AND code = ?", userID, code).
		Order("created_at desc").
		First(&rc).Error
	if err != nil {
		return rc, err
	}
	return rc, nil
}

func (r *DBResetCodeRepo) DeleteResetCode(id uint) error {
	return r.db.Delete(&account.PasswordResetCode{}, id).Error
}

func (r *DBResetCodeRepo) WithTx(tx *gorm.DB) ResetCodeRepo {
	if tx == nil {
		return r
	}
	return &DBResetCodeRepo{db: tx}
}
