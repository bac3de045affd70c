package account

type SignupInput struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ApproveInput struct {
	UserID uint   `json:"user_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

type UpdateStatusInput struct {
	UserID uint   `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UserSummary is the user payload returned by a successful login.
type UserSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func Summarize(u User) UserSummary {
	return UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email}
}
