package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JMacalaguing/DynaHCare-V2/internal/application"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/response"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	service *application.AccountService
}

func NewAccountHandler(service *application.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Signup registers a pending user. The account stays unusable until an
// administrator approves it.
func (h *AccountHandler) Signup(c *gin.Context) {
	var input account.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "All fields are required."})
		return
	}

	if _, err := h.service.Signup(input); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "User created successfully. Awaiting admin approval."})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var input account.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Email and password are required."})
		return
	}

	usr, token, err := h.service.Login(input.Email, input.Password)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	case errors.Is(err, application.ErrNotApproved):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Account is not approved yet"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    account.Summarize(usr),
	})
}

func (h *AccountHandler) AdminLogin(c *gin.Context) {
	var input account.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Email and password are required."})
		return
	}

	token, err := h.service.AdminLogin(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) || errors.Is(err, application.ErrNotAdmin) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials or not an admin"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, response.AdminLoginResponse{Message: "Admin login successful", Token: token})
}

func (h *AccountHandler) Approve(c *gin.Context) {
	var input account.ApproveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "user_id and action are required"})
		return
	}

	status, err := h.service.Approve(input.UserID, input.Action)
	switch {
	case errors.Is(err, application.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.StatusResponse{Status: string(status)})
}

func (h *AccountHandler) ApprovalStatus(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Email is required."})
		return
	}

	status, err := h.service.ApprovalStatus(email)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, response.StatusResponse{Status: string(status)})
}

func (h *AccountHandler) UpdateStatus(c *gin.Context) {
	var input account.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "user_id and status are required"})
		return
	}

	status, err := h.service.UpdateStatus(input.UserID, input.Status)
	switch {
	case errors.Is(err, application.ErrInvalidUserStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.StatusResponse{Status: string(status)})
}

func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.UserListResponse{Users: users})
}

// DeleteUser answers plain text, as the admin UI expects.
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid user id")
		return
	}

	err = h.service.RemoveUser(uint(id64))
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		c.String(http.StatusNotFound, "User not found")
	case err != nil:
		c.String(http.StatusInternalServerError, "Something went wrong")
	default:
		c.String(http.StatusOK, "User deleted successfully")
	}
}

func (h *AccountHandler) ForgotPassword(c *gin.Context) {
	var input account.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Email is required."})
		return
	}

	if err := h.service.ForgotPassword(input.Email); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to send reset code"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Reset code sent to your email"})
}

func (h *AccountHandler) ResetPassword(c *gin.Context) {
	var input account.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Email, code and new password are required."})
		return
	}

	err := h.service.ResetPassword(input.Email, input.Code, input.NewPassword)
	switch {
	case errors.Is(err, application.ErrUserNotFound), errors.Is(err, application.ErrResetCodeNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Invalid email or reset code"})
		return
	case errors.Is(err, application.ErrResetCodeExpired):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Reset code has expired"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password reset successful"})
}
