package repository

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"
	"gorm.io/gorm"
)

type TokenRepo interface {
	GetTokenByUserID(userID uint) (account.AuthToken, error)
	GetTokenByKey(key string) (account.AuthToken, error)
	CreateToken(token *account.AuthToken) error
	DeleteToken(key string) error
	WithTx(tx *gorm.DB) TokenRepo
}

type DBTokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) *DBTokenRepo {
	return &DBTokenRepo{db: db}
}

func (r *DBTokenRepo) GetTokenByUserID(userID uint) (account.AuthToken, error) {
	var t account.AuthToken
	if err := r.db.Where("user_id = ?", userID).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTokenRepo) GetTokenByKey(key string) (account.AuthToken, error) {
	var t account.AuthToken
	if err := r.db.Where("key = ?", key).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTokenRepo) CreateToken(token *account.AuthToken) error {
	return r.db.Create(token).Error
}

func (r *DBTokenRepo) DeleteToken(key string) error {
	return r.db.Delete(&account.AuthToken{}, "key = ?", key).Error
}

func (r *DBTokenRepo) WithTx(tx *gorm.DB) TokenRepo {
	if tx == nil {
		return r
	}
	return &DBTokenRepo{db: tx}
}
