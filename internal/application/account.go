package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/JMacalaguing/DynaHCare-V2/internal/api/middleware"
	"github.com/JMacalaguing/DynaHCare-V2/internal/config"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/mailer"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNotApproved         = errors.New("account is not approved")
	ErrNotAdmin            = errors.New("not an admin account")
	ErrInvalidAction       = errors.New("action must be approve or reject")
	ErrInvalidUserStatus   = errors.New("invalid status value")
	ErrResetCodeNotFound   = errors.New("reset code not found")
	ErrResetCodeExpired    = errors.New("reset code has expired")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

const tokenLifetime = 30 * 24 * time.Hour

type AccountService struct {
	Repos *repository.Repos
	Mail  mailer.Sender
}

func NewAccountService(repos *repository.Repos, mail mailer.Sender) *AccountService {
	return &AccountService{Repos: repos, Mail: mail}
}

// Signup creates a pending user. No token is issued until an administrator
// approves the account and the user logs in.
func (s *AccountService) Signup(input account.SignupInput) (account.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.User{}, ErrPasswordHashFailure
	}

	usr := account.User{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hashed),
		Status:      account.UserStatusPending,
	}
	return usr, s.Repos.User.SaveUser(&usr)
}

func (s *AccountService) Login(email, password string) (account.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return account.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return account.User{}, "", ErrInvalidCredentials
	}
	if usr.Status != account.UserStatusApproved {
		return account.User{}, "", ErrNotApproved
	}

	token, err := s.ensureToken(usr)
	if err != nil {
		return account.User{}, "", err
	}
	return usr, token, nil
}

// AdminLogin ignores the approval status; only the admin flag matters.
func (s *AccountService) AdminLogin(email, password string) (string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !usr.IsAdmin {
		return "", ErrNotAdmin
	}
	return s.ensureToken(usr)
}

// ensureToken reuses the stored token for the user when it is still valid,
// otherwise replaces it.
func (s *AccountService) ensureToken(usr account.User) (string, error) {
	existing, err := s.Repos.Token.GetTokenByUserID(usr.ID)
	if err == nil {
		if _, perr := middleware.ParseToken(existing.Key); perr == nil {
			return existing.Key, nil
		}
		if derr := s.Repos.Token.DeleteToken(existing.Key); derr != nil {
			return "", derr
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	key, err := middleware.GenerateToken(usr, tokenLifetime)
	if err != nil {
		return "", err
	}
	token := account.AuthToken{Key: key, UserID: usr.ID}
	if err := s.Repos.Token.CreateToken(&token); err != nil {
		return "", err
	}
	return key, nil
}

func (s *AccountService) Approve(userID uint, action string) (account.UserStatus, error) {
	var status account.UserStatus
	switch action {
	case "approve":
		status = account.UserStatusApproved
	case "reject":
		status = account.UserStatusRejected
	default:
		return "", ErrInvalidAction
	}

	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return "", ErrUserNotFound
	}
	usr.Status = status
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return "", err
	}
	return status, nil
}

func (s *AccountService) ApprovalStatus(email string) (account.UserStatus, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return "", ErrUserNotFound
	}
	return usr.Status, nil
}

func (s *AccountService) UpdateStatus(userID uint, status string) (account.UserStatus, error) {
	if !account.ValidUserStatus(status) {
		return "", ErrInvalidUserStatus
	}
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return "", ErrUserNotFound
	}
	usr.Status = account.UserStatus(status)
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return "", err
	}
	return usr.Status, nil
}

// ListUsers returns every non-administrator account.
func (s *AccountService) ListUsers() ([]account.User, error) {
	return s.Repos.User.ListNonAdminUsers()
}

func (s *AccountService) RemoveUser(id uint) error {
	if _, err := s.Repos.User.GetUserByID(id); err != nil {
		return ErrUserNotFound
	}
	return s.Repos.User.DeleteUser(id)
}

// ForgotPassword persists a fresh 6-digit code and mails it. Outstanding codes
// stay valid until they expire or are used.
func (s *AccountService) ForgotPassword(email string) error {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}

	rc := account.PasswordResetCode{UserID: usr.ID, Code: code}
	if err := s.Repos.ResetCode.CreateResetCode(&rc); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Your DynaHCare password reset code is %s. It expires in %d minutes.",
		code, config.ResetCodeTTL,
	)
	return s.Mail.SendSimple([]string{usr.Email}, "Password Reset Code", body)
}

func (s *AccountService) ResetPassword(email, code, newPassword string) error {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	rc, err := s.Repos.ResetCode.GetResetCode(usr.ID, code)
	if err != nil {
		return ErrResetCodeNotFound
	}

	ttl := time.Duration(config.ResetCodeTTL) * time.Minute
	if rc.ExpiredAt(time.Now(), ttl) {
		return ErrResetCodeExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	usr.Password = string(hashed)
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return err
	}

	// Single use: the matched code is consumed on success.
	return s.Repos.ResetCode.DeleteResetCode(rc.ID)
}
