package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	parentID := int64(1)
	suite.accounts.On("CreateAccount", mock.Anything, mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
		return r.Name == "بانک ملت" && r.AccountType == domain.Asset && r.ParentID != nil && *r.ParentID == parentID
	})).Return(&domain.Account{
		AccountID:   12,
		Code:        "13",
		Name:        "بانک ملت",
		AccountType: domain.Asset,
		ParentID:    &parentID,
		Balance:     decimal.Zero,
		IsActive:    true,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":        "بانک ملت",
		"accountType": "ASSET",
		"parentID":    parentID,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal("13", resp.Code)
	suite.Equal(int64(12), resp.AccountID)
}

func (suite *HandlerTestSuite) TestCreateAccount_RejectsUnknownType() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":        "Misc",
		"accountType": "GOODWILL",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.accounts.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount_MissingParent() {
	suite.accounts.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: parent account 99", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":        "Child",
		"accountType": "ASSET",
		"parentID":    99,
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "parent account 99")
}

func (suite *HandlerTestSuite) TestCreateAccount_CodeExhausted() {
	suite.accounts.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: no free account code", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{"name": "X", "accountType": "EXPENSE"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccount() {
	suite.Run("invalid id", func() {
		w := suite.do(http.MethodGet, "/api/v1/accounts/abc", nil)
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("not found", func() {
		suite.accounts.On("GetAccountByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()
		w := suite.do(http.MethodGet, "/api/v1/accounts/404", nil)
		suite.Equal(http.StatusNotFound, w.Code)
	})

	suite.Run("found", func() {
		suite.accounts.On("GetAccountByID", mock.Anything, int64(5)).
			Return(&domain.Account{AccountID: 5, Code: "111", Name: domain.CashAccountName, AccountType: domain.Asset, IsActive: true}, nil).Once()
		w := suite.do(http.MethodGet, "/api/v1/accounts/5", nil)
		suite.Equal(http.StatusOK, w.Code)
		suite.Contains(w.Body.String(), domain.CashAccountName)
	})
}

func (suite *HandlerTestSuite) TestListAccounts_Defaults() {
	suite.accounts.On("ListAccounts", mock.Anything, 100, 0).
		Return([]domain.Account{{AccountID: 1, Code: "1", Name: "دارایی‌ها"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Accounts, 1)
}

func (suite *HandlerTestSuite) TestListAccounts_InvalidLimit() {
	w := suite.do(http.MethodGet, "/api/v1/accounts?limit=0", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListChildAccounts() {
	suite.accounts.On("ListChildAccounts", mock.Anything, int64(1)).
		Return([]domain.Account{{AccountID: 2, Code: "11"}, {AccountID: 3, Code: "12"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1/children", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Accounts, 2)
}

func (suite *HandlerTestSuite) TestUpdateAccount() {
	suite.accounts.On("UpdateAccount", mock.Anything, int64(7), mock.MatchedBy(func(r dto.UpdateAccountRequest) bool {
		return r.Name != nil && *r.Name == "Renamed" && r.IsActive == nil
	})).Return(&domain.Account{AccountID: 7, Name: "Renamed", IsActive: true}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/accounts/7", map[string]any{"name": "Renamed"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Renamed")
}

func (suite *HandlerTestSuite) TestDeleteAccount() {
	suite.accounts.On("DeactivateAccount", mock.Anything, int64(7)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/7", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}
