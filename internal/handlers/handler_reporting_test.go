package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestTrialBalance() {
	resp := dto.ToTrialBalanceResponse([]domain.TrialBalanceRow{
		{AccountID: 1, Code: "111", AccountName: domain.CashAccountName, Debit: decimal.NewFromInt(2500), Credit: decimal.Zero, Balance: decimal.NewFromInt(2500)},
		{AccountID: 2, Code: "31", AccountName: "سرمایه", Debit: decimal.Zero, Credit: decimal.NewFromInt(2500), Balance: decimal.NewFromInt(-2500)},
	})
	suite.reporting.On("TrialBalance", mock.Anything).Return(&resp, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TrialBalanceResponse
	suite.decode(w, &body)
	suite.True(body.TotalDebit.Equal(body.TotalCredit))
	suite.Len(body.Rows, 2)
}

func (suite *HandlerTestSuite) TestLedger_PassesDateRange() {
	suite.reporting.On("Ledger", mock.Anything, int64(4),
		mock.MatchedBy(func(d *time.Time) bool { return d != nil && d.Format("2006-01-02") == "2024-03-01" }),
		mock.MatchedBy(func(d *time.Time) bool { return d != nil && d.Format("2006-01-02") == "2024-03-31" }),
	).Return(&dto.LedgerResponse{AccountID: 4, Code: "111", Rows: []domain.LedgerRow{}, ClosingBalance: decimal.Zero}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/ledger/4?startDate=2024-03-01&endDate=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestLedger_UnknownAccount() {
	suite.reporting.On("Ledger", mock.Anything, int64(77), (*time.Time)(nil), (*time.Time)(nil)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/ledger/77", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDashboard() {
	suite.reporting.On("Dashboard", mock.Anything).Return(&domain.DashboardStats{
		TotalEntries:      3,
		TotalAccounts:     12,
		TotalDebit:        decimal.NewFromInt(900),
		TotalCredit:       decimal.NewFromInt(900),
		BalanceDifference: decimal.Zero,
		RecentEntries:     []domain.JournalEntry{{JournalEntryID: 3, EntryNumber: "JE-000003"}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/dashboard", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.DashboardResponse
	suite.decode(w, &body)
	suite.Equal(int64(12), body.TotalAccounts)
	suite.Len(body.RecentEntries, 1)
}

func (suite *HandlerTestSuite) TestProcessVoiceCommand() {
	suite.Run("parsed", func() {
		entryID := int64(8)
		suite.voice.On("ProcessVoiceCommand", mock.Anything, "پرداخت پانصد هزار تومان به علی").
			Return(&dto.VoiceCommandResponse{Success: true, Message: "ok", JournalEntryID: &entryID, EntryNumber: "JE-000008"}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/voice/process", dto.VoiceCommandRequest{Text: "پرداخت پانصد هزار تومان به علی"})

		suite.Equal(http.StatusOK, w.Code)
		var body dto.VoiceCommandResponse
		suite.decode(w, &body)
		suite.True(body.Success)
		suite.Equal(int64(8), *body.JournalEntryID)
	})

	suite.Run("not understood is still 200", func() {
		suite.voice.On("ProcessVoiceCommand", mock.Anything, "سلام").
			Return(&dto.VoiceCommandResponse{Success: false, Message: "مبلغ تراکنش مشخص نیست"}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/voice/process", dto.VoiceCommandRequest{Text: "سلام"})

		suite.Equal(http.StatusOK, w.Code)
		suite.Contains(w.Body.String(), `"success":false`)
	})

	suite.Run("empty text", func() {
		w := suite.do(http.MethodPost, "/api/v1/voice/process", map[string]any{"text": ""})
		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *HandlerTestSuite) TestListVoiceLogs_Defaults() {
	suite.voice.On("ListVoiceLogs", mock.Anything, 50, 0).Return([]domain.VoiceLog{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/voice/logs", nil)

	suite.Equal(http.StatusOK, w.Code)
}
