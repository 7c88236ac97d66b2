package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tasktracker/internal/auth"
	apierrors "tasktracker/internal/errors"
	"tasktracker/internal/models"
	"tasktracker/internal/repository"
	"tasktracker/internal/services"
)

var testJWTSecret = []byte("test-secret")

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, testJWTSecret)
	handler := NewAuthHandler(authService, zap.NewNop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/register", map[string]string{
		"username": "newuser",
		"password": "Secret1!",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "newuser").First(&user).Error)
}

func TestAuthHandler_Register_MissingData(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/register", map[string]string{
		"username": "newuser",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeMissingData, decodeAPIError(t, w).Code)
}

func TestAuthHandler_Register_PolicyTags(t *testing.T) {
	env := setupAuthTestEnv(t)

	tests := []struct {
		password string
		wantCode string
	}{
		{"Ab1!", apierrors.ErrCodePasswordTooShort},
		{"ALLUPPER1!", apierrors.ErrCodePasswordNoLower},
		{"alllower1!", apierrors.ErrCodePasswordNoUpper},
		{"NoDigits!!", apierrors.ErrCodePasswordNoDigit},
		{"Password1", apierrors.ErrCodePasswordNoSpecial},
	}

	for _, tt := range tests {
		w := postJSON(t, env.router, "/register", map[string]string{
			"username": "newuser",
			"password": tt.password,
		})

		require.Equal(t, http.StatusBadRequest, w.Code, "password %q", tt.password)
		require.Equal(t, tt.wantCode, decodeAPIError(t, w).Code, "password %q", tt.password)
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/register", map[string]string{
		"username": "alice",
		"password": "Secret1!",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, env.router, "/register", map[string]string{
		"username": "alice",
		"password": "Secret1!",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeUserExists, decodeAPIError(t, w).Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	require.NoError(t, env.authService.Register(services.RegisterInput{
		Username: "existing",
		Password: "Secret1!",
	}))

	w := postJSON(t, env.router, "/login", map[string]string{
		"username": "existing",
		"password": "Secret1!",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "LOGIN_OK", response.Message)
	require.NotEmpty(t, response.Token)

	claims, err := auth.VerifyToken(response.Token, testJWTSecret)
	require.NoError(t, err)
	require.Equal(t, "existing", claims.Username)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	require.NoError(t, env.authService.Register(services.RegisterInput{
		Username: "existing",
		Password: "Secret1!",
	}))

	w := postJSON(t, env.router, "/login", map[string]string{
		"username": "existing",
		"password": "Secret2!",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodePasswordIncorrect, decodeAPIError(t, w).Code)
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/login", map[string]string{
		"username": "nobody",
		"password": "Secret1!",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeUserNotFound, decodeAPIError(t, w).Code)
}
