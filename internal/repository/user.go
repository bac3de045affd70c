package repository

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (account.User, error)
	GetUserByEmail(email string) (account.User, error)
	ListNonAdminUsers() ([]account.User, error)
	SaveUser(user *account.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByID(id uint) (account.User, error) {
	var u account.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (account.User, error) {
	var u account.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ListNonAdminUsers() ([]account.User, error) {
	var users []account.User
	err := r.db.Where("is_admin = ?", false).Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(user *account.User) error {
	return r.db.Save(user).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&account.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
