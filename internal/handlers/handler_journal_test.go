package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func entryBody(debit, credit int64) map[string]any {
	return map[string]any{
		"date":        "2024-07-30T00:00:00Z",
		"description": "خرید لوازم",
		"transactions": []map[string]any{
			{"accountID": 1, "transactionType": "DEBIT", "amount": debit},
			{"accountID": 2, "transactionType": "CREDIT", "amount": credit},
		},
	}
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_Success() {
	suite.journal.On("CreateJournalEntry", mock.Anything, mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
		return len(r.Transactions) == 2 && r.Transactions[0].Amount.Equal(decimal.NewFromInt(1000))
	}), domain.SourceManual).Return(&domain.JournalEntry{
		JournalEntryID: 42,
		EntryNumber:    "JE-000042",
		Date:           time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC),
		Description:    "خرید لوازم",
		Source:         domain.SourceManual,
		Transactions: []domain.Transaction{
			{TransactionID: 1, AccountID: 1, TransactionType: domain.Debit, Amount: decimal.NewFromInt(1000)},
			{TransactionID: 2, AccountID: 2, TransactionType: domain.Credit, Amount: decimal.NewFromInt(1000)},
		},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", entryBody(1000, 1000))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.decode(w, &resp)
	suite.Equal("JE-000042", resp.EntryNumber)
	suite.Len(resp.Transactions, 2)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_Unbalanced() {
	err := fmt.Errorf("create entry: %w", apperrors.NewUnbalancedError(decimal.NewFromInt(1000), decimal.NewFromInt(900)))
	suite.journal.On("CreateJournalEntry", mock.Anything, mock.Anything, domain.SourceManual).Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", entryBody(1000, 900))

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal("1000", body["debit"])
	suite.Equal("900", body["credit"])
	suite.Contains(body["error"], "not balanced")
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_SingleLineRejectedByBinding() {
	body := entryBody(1000, 1000)
	body["transactions"] = body["transactions"].([]map[string]any)[:1]

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journal.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_InvalidTransactionType() {
	body := entryBody(1000, 1000)
	body["transactions"].([]map[string]any)[0]["transactionType"] = "BOTH"

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_Conflict() {
	suite.journal.On("CreateJournalEntry", mock.Anything, mock.Anything, domain.SourceManual).
		Return(nil, fmt.Errorf("%w: entry number taken", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", entryBody(10, 10))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_InternalErrorHidesCause() {
	suite.journal.On("CreateJournalEntry", mock.Anything, mock.Anything, domain.SourceManual).
		Return(nil, fmt.Errorf("connection refused")).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", entryBody(10, 10))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *HandlerTestSuite) TestListJournalEntries_PassesParams() {
	token := "abc"
	suite.journal.On("ListJournalEntries", mock.Anything, mock.MatchedBy(func(p dto.ListJournalEntriesParams) bool {
		return p.Limit == 5 && p.NextToken != nil && *p.NextToken == token &&
			p.StartDate != nil && p.StartDate.Format("2006-01-02") == "2024-01-01" && p.EndDate == nil
	})).Return(&dto.ListJournalEntriesResponse{Entries: []dto.JournalEntryResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-entries?limit=5&nextToken=abc&startDate=2024-01-01", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetJournalEntry_NotFound() {
	suite.journal.On("GetJournalEntry", mock.Anything, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-entries/9", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateJournalEntry() {
	suite.journal.On("UpdateJournalEntry", mock.Anything, int64(3), mock.Anything).
		Return(&domain.JournalEntry{JournalEntryID: 3, EntryNumber: "JE-000003"}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/journal-entries/3", entryBody(500, 500))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "JE-000003")
}

func (suite *HandlerTestSuite) TestDeleteJournalEntry() {
	suite.journal.On("DeleteJournalEntry", mock.Anything, int64(3)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/journal-entries/3", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}
