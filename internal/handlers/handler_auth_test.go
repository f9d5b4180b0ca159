package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/dto"
	"github.com/fust64/fust_beheer_app/internal/handlers"
	"github.com/fust64/fust_beheer_app/internal/platform/config"
	"github.com/fust64/fust_beheer_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	passwordHash, err := utils.HashPassword("correct horse battery staple")
	suite.Require().NoError(err)

	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fust-test",
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: passwordHash,
		IsProduction:      true,
	}
	services := &portssvc.ServiceContainer{
		Partner:  new(MockPartnerService),
		Mutation: new(MockMutationService),
		Balance:  new(MockBalanceService),
		Importer: new(MockImportService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AuthHandlerTestSuite) doLogin(email, password string) *httptest.ResponseRecorder {
	reqBody, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	w := suite.doLogin("admin@example.com", "correct horse battery staple")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.True(resp.ExpiresAt.After(time.Now()))
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	w := suite.doLogin("admin@example.com", "not the password")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongEmail() {
	w := suite.doLogin("someone@example.com", "correct horse battery staple")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimited() {
	// The login route allows 5 attempts per minute per client; the 6th must
	// be rejected before credentials are even checked.
	for i := 0; i < 5; i++ {
		w := suite.doLogin("admin@example.com", "not the password")
		suite.Equal(http.StatusUnauthorized, w.Code)
	}

	w := suite.doLogin("admin@example.com", "correct horse battery staple")

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Contains(w.Body.String(), "Too many requests")
}

// --- Run Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
