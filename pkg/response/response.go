package response

import "github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type LoginResponse struct {
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    account.UserSummary `json:"user"`
}

type AdminLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type UserListResponse struct {
	Users []account.User `json:"users"`
}

type SubmitResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
