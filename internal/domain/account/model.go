package account

import "time"

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

// ValidUserStatus reports whether s is one of the three lifecycle states.
func ValidUserStatus(s string) bool {
	switch UserStatus(s) {
	case UserStatusPending, UserStatusApproved, UserStatusRejected:
		return true
	}
	return false
}

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FullName    string     `gorm:"size:255;not null" json:"full_name"`
	Email       string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PhoneNumber string     `gorm:"size:50" json:"phone_number"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	Status      UserStatus `gorm:"size:20;default:'pending'" json:"status"`
	IsAdmin     bool       `gorm:"default:false" json:"is_admin"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AuthToken is the stored bearer token for a user. Login reuses the existing
// row instead of minting a new token on every call.
type AuthToken struct {
	Key       string    `gorm:"primaryKey;size:512" json:"key"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// PasswordResetCode is a single-use 6-digit code mailed to the user. Several
// codes may be outstanding at once; each is deleted on successful use.
type PasswordResetCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpiredAt reports whether the code is past its validity window at t.
func (c PasswordResetCode) ExpiredAt(t time.Time, ttl time.Duration) bool {
	return t.Sub(c.CreatedAt) > ttl
}
