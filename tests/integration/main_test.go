package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/JMacalaguing/DynaHCare-V2/internal/api/middleware"
	"github.com/JMacalaguing/DynaHCare-V2/internal/config"
	"github.com/JMacalaguing/DynaHCare-V2/internal/config/db"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/logbook"
	"github.com/JMacalaguing/DynaHCare-V2/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router *gin.Engine
	gormDB *gorm.DB
	mail   *mailRecorder
)

// mailRecorder captures outbound mail so reset codes can be read back in tests.
type mailRecorder struct {
	lastTo      []string
	lastSubject string
	lastBody    string
}

func (m *mailRecorder) SendSimple(to []string, subject, body string) error {
	m.lastTo = to
	m.lastSubject = subject
	m.lastBody = body
	return nil
}

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	var err error
	gormDB, err = gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	if err := gormDB.AutoMigrate(
		&account.User{},
		&account.AuthToken{},
		&account.PasswordResetCode{},
		&formbuilder.Template{},
		&formbuilder.Form{},
		&formbuilder.FormResponse{},
		&logbook.LogEntry{},
	); err != nil {
		log.Fatal(err)
	}

	mail = &mailRecorder{}
	router = testutils.SetupRouter(gormDB, mail)

	seedAdmin("admin@dynahcare.test", "adminpass")

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedAdmin(email, password string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	admin := account.User{
		FullName: "Site Admin",
		Email:    email,
		Password: string(hashed),
		Status:   account.UserStatusApproved,
		IsAdmin:  true,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}
}

func adminToken(t *testing.T) string {
	w := doRequest(t, "POST", "/api/auth/admin/login", "",
		map[string]string{"email": "admin@dynahcare.test", "password": "adminpass"}, http.StatusOK)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
