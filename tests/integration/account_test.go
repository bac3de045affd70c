package integration

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupUser(t *testing.T, email string) {
	doRequest(t, "POST", "/api/auth/signup", "", map[string]string{
		"full_name":    "Test User",
		"email":        email,
		"phone_number": "09171234567",
		"password":     "secret123",
	}, http.StatusOK)
}

func approveUser(t *testing.T, token string, email string) {
	var users struct {
		Users []struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"users"`
	}
	w := doRequest(t, "GET", "/api/auth/user-list", "", nil, http.StatusOK)
	decodeBody(t, w, &users)

	var id uint
	for _, u := range users.Users {
		if u.Email == email {
			id = u.ID
		}
	}
	require.NotZero(t, id, "signed-up user missing from user-list")

	doRequest(t, "POST", "/api/auth/admin/approve", token,
		map[string]any{"user_id": id, "action": "approve"}, http.StatusOK)
}

func TestSignupApprovalLoginFlow(t *testing.T) {
	email := fmt.Sprintf("user-%s@test.com", uuid.NewString())
	signupUser(t, email)

	// Pending accounts cannot log in.
	doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": email, "password": "secret123"}, http.StatusForbidden)

	// Status is visible without authentication.
	var status struct {
		Status string `json:"status"`
	}
	w := doRequest(t, "GET", "/api/auth/approve?email="+email, "", nil, http.StatusOK)
	decodeBody(t, w, &status)
	assert.Equal(t, "pending", status.Status)

	approveUser(t, adminToken(t), email)

	w = doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": email, "password": "secret123"}, http.StatusOK)

	var login struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, w, &login)
	assert.Equal(t, "Login successful", login.Message)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, email, login.User.Email)
}

func TestLogin_TokenReusedAcrossLogins(t *testing.T) {
	email := fmt.Sprintf("user-%s@test.com", uuid.NewString())
	signupUser(t, email)
	approveUser(t, adminToken(t), email)

	var first, second struct {
		Token string `json:"token"`
	}
	w := doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": email, "password": "secret123"}, http.StatusOK)
	decodeBody(t, w, &first)

	w = doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": email, "password": "secret123"}, http.StatusOK)
	decodeBody(t, w, &second)

	assert.Equal(t, first.Token, second.Token)
}

func TestAdminApprove_RequiresAdminToken(t *testing.T) {
	email := fmt.Sprintf("user-%s@test.com", uuid.NewString())
	signupUser(t, email)
	approveUser(t, adminToken(t), email)

	w := doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": email, "password": "secret123"}, http.StatusOK)
	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &login)

	// No token at all.
	doRequest(t, "POST", "/api/auth/admin/approve", "",
		map[string]any{"user_id": 1, "action": "approve"}, http.StatusUnauthorized)

	// Valid token of a non-admin.
	doRequest(t, "POST", "/api/auth/admin/approve", login.Token,
		map[string]any{"user_id": 1, "action": "approve"}, http.StatusForbidden)
}

func TestAdminLogin_RejectsNonAdmin(t *testing.T) {
	email := fmt.Sprintf("user-%s@test.com", uuid.NewString())
	signupUser(t, email)
	approveUser(t, adminToken(t), email)

	doRequest(t, "POST", "/api/auth/admin/login", "",
		map[string]string{"email": email, "password": "secret123"}, http.StatusUnauthorized)
}

func TestUpdateStatusAndDeleteUser(t *testing.T) {
	email := fmt.Sprintf("user-%s@test.com", uuid.NewString())
	signupUser(t, email)

	var users struct {
		Users []struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"users"`
	}
	w := doRequest(t, "GET", "/api/auth/user-list", "", nil, http.StatusOK)
	decodeBody(t, w, &users)
	var id uint
	for _, u := range users.Users {
		if u.Email == email {
			id = u.ID
		}
	}
	require.NotZero(t, id)

	doRequest(t, "POST", "/api/auth/update-status", "",
		map[string]any{"user_id": id, "status": "rejected"}, http.StatusOK)

	doRequest(t, "POST", "/api/auth/update-status", "",
		map[string]any{"user_id": id, "status": "banned"}, http.StatusBadRequest)

	w = doRequest(t, "DELETE", fmt.Sprintf("/api/auth/delete-user/%d", id), "", nil, http.StatusOK)
	assert.Equal(t, "User deleted successfully", w.Body.String())

	doRequest(t, "DELETE", fmt.Sprintf("/api/auth/delete-user/%d", id), "", nil, http.StatusNotFound)
}

func TestPasswordResetFlow(t *testing.T) {
	email := fmt.Sprintf("user-%s@test.com", uuid.NewString())
	signupUser(t, email)
	approveUser(t, adminToken(t), email)

	doRequest(t, "POST", "/api/auth/forgot-password", "",
		map[string]string{"email": email}, http.StatusOK)
	require.Equal(t, []string{email}, mail.lastTo)
	require.Equal(t, "Password Reset Code", mail.lastSubject)

	code := regexp.MustCompile(`\d{6}`).FindString(mail.lastBody)
	require.NotEmpty(t, code, "mail body carries no reset code: %s", mail.lastBody)

	// Wrong code first.
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	doRequest(t, "POST", "/api/auth/reset-password", "",
		map[string]string{"email": email, "code": wrong, "new_password": "newpass123"}, http.StatusNotFound)

	doRequest(t, "POST", "/api/auth/reset-password", "",
		map[string]string{"email": email, "code": code, "new_password": "newpass123"}, http.StatusOK)

	// Old password no longer works, new one does.
	doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": email, "password": "secret123"}, http.StatusUnauthorized)
	doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": email, "password": "newpass123"}, http.StatusOK)

	// The code is single use.
	doRequest(t, "POST", "/api/auth/reset-password", "",
		map[string]string{"email": email, "code": code, "new_password": "another123"}, http.StatusNotFound)
}
