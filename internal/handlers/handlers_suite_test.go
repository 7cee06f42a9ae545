package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/handlers"
	"github.com/SscSPs/hesabdar/internal/middleware"
	"github.com/SscSPs/hesabdar/internal/platform/config"
	"github.com/SscSPs/hesabdar/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	cfg       *config.Config
	accounts  *MockAccountService
	journal   *MockJournalService
	reporting *MockReportingService
	voice     *MockVoiceService
	receipts  *MockReceiptService
	auth      *MockAuthService
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "hesabdar-test",
		AdminUsername:     "admin",
		UploadDir:         suite.T().TempDir(),
		MaxUploadSize:     1 << 20,
		IsProduction:      true,
	}

	suite.accounts = new(MockAccountService)
	suite.journal = new(MockJournalService)
	suite.reporting = new(MockReportingService)
	suite.voice = new(MockVoiceService)
	suite.receipts = new(MockReceiptService)
	suite.auth = new(MockAuthService)

	container := &portssvc.ServiceContainer{
		Account:   suite.accounts,
		Journal:   suite.journal,
		Reporting: suite.reporting,
		Voice:     suite.voice,
		Receipt:   suite.receipts,
		Auth:      suite.auth,
	}

	limiter, err := middleware.NewMemoryLimiter("100-M")
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, container, nil, middleware.RateLimit(limiter))
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.accounts.AssertExpectations(suite.T())
	suite.journal.AssertExpectations(suite.T())
	suite.reporting.AssertExpectations(suite.T())
	suite.voice.AssertExpectations(suite.T())
	suite.receipts.AssertExpectations(suite.T())
	suite.auth.AssertExpectations(suite.T())
}

// token issues a JWT for the admin operator signed with the test secret.
func (suite *HandlerTestSuite) token() string {
	tok, err := utils.GenerateJWT("admin", suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return tok
}

// do serves an authenticated request. A non-nil body is encoded as JSON.
func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.token())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "healthy")
}

func (suite *HandlerTestSuite) TestProtectedRouteRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.accounts.AssertNotCalled(suite.T(), "ListAccounts")
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
