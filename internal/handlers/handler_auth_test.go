package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) login(body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	suite.auth.On("Login", mock.Anything, "", "admin").Return("signed-token", 24*time.Hour, nil).Once()

	w := suite.login(dto.LoginRequest{Password: "admin"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("signed-token", resp.Token)
	suite.Equal(int64(86400), resp.ExpiresIn)
}

func (suite *HandlerTestSuite) TestLogin_WrongPassword() {
	suite.auth.On("Login", mock.Anything, "admin", "nope").Return("", time.Duration(0), apperrors.ErrUnauthorized).Once()

	w := suite.login(dto.LoginRequest{Username: "admin", Password: "nope"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_MissingPassword() {
	w := suite.login(map[string]any{"username": "admin"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAuthCheck() {
	suite.auth.On("HasCredential", mock.Anything, "").Return(true, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/check", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"passwordSet":true`)
}

func (suite *HandlerTestSuite) TestChangePassword_UsesTokenSubject() {
	suite.auth.On("ChangePassword", mock.Anything, "admin", "old-pass", "new-pass").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/change-password", dto.ChangePasswordRequest{OldPassword: "old-pass", NewPassword: "new-pass"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestChangePassword_WrongOldPassword() {
	suite.auth.On("ChangePassword", mock.Anything, "admin", "bad", "new-pass").Return(apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/change-password", dto.ChangePasswordRequest{OldPassword: "bad", NewPassword: "new-pass"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}
