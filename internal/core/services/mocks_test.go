package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live transaction; repositories are mocked so none of its methods run.
type fakeTx struct {
	pgx.Tx
}

// --- Transaction manager ---

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx wires a transaction that begins and always rolls back; commit is optional.
func expectTx(m *MockTxManager, tx pgx.Tx) {
	m.On("Begin", mock.Anything).Return(tx, nil)
	m.On("Commit", mock.Anything, tx).Return(nil).Maybe()
	m.On("Rollback", mock.Anything, tx).Return(nil)
}

// --- Account repository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListChildAccounts(ctx context.Context, parentID int64) ([]domain.Account, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID int64, now time.Time) error {
	args := m.Called(ctx, accountID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByIDInTx(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListSiblingCodesInTx(ctx context.Context, tx pgx.Tx, parentID *int64) ([]string, error) {
	args := m.Called(ctx, tx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountRepository) LockAccountNameInTx(ctx context.Context, tx pgx.Tx, name string) error {
	args := m.Called(ctx, tx, name)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.Account, error) {
	args := m.Called(ctx, tx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindLastNumericCodeInTx(ctx context.Context, tx pgx.Tx) (string, error) {
	args := m.Called(ctx, tx)
	return args.String(0), args.Error(1)
}

func (m *MockAccountRepository) InsertAccountInTx(ctx context.Context, tx pgx.Tx, account *domain.Account) (bool, error) {
	args := m.Called(ctx, tx, account)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[int64]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, now)
	return args.Error(0)
}

// --- Journal repository ---

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, limit int, nextToken *string, startDate, endDate *time.Time) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken, startDate, endDate)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockJournalRepository) ListRecentJournalEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindTransactionsByJournalIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.Transaction, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) NextEntrySequenceInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) InsertJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalEntryForUpdate(ctx context.Context, tx pgx.Tx, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) UpdateJournalEntryHeaderInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) ReplaceTransactionsInTx(ctx context.Context, tx pgx.Tx, entryID int64, transactions []domain.Transaction) error {
	args := m.Called(ctx, tx, entryID, transactions)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteJournalEntryInTx(ctx context.Context, tx pgx.Tx, entryID int64) error {
	args := m.Called(ctx, tx, entryID)
	return args.Error(0)
}

// --- Reporting, receipt, voice log and credential repositories ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetLedgerLines(ctx context.Context, accountID int64, startDate, endDate *time.Time) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, accountID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockReportingRepository) GetLedgerTotals(ctx context.Context) (domain.LedgerTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LedgerTotals), args.Error(1)
}

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt *domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID int64) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, limit int, offset int) ([]domain.Receipt, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindReceiptForUpdate(ctx context.Context, tx pgx.Tx, receiptID int64) (*domain.Receipt, error) {
	args := m.Called(ctx, tx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) MarkReceiptProcessedInTx(ctx context.Context, tx pgx.Tx, receiptID int64, entryID int64) error {
	args := m.Called(ctx, tx, receiptID, entryID)
	return args.Error(0)
}

type MockVoiceLogRepository struct {
	mock.Mock
}

func (m *MockVoiceLogRepository) SaveVoiceLog(ctx context.Context, log *domain.VoiceLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockVoiceLogRepository) ListVoiceLogs(ctx context.Context, limit int, offset int) ([]domain.VoiceLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoiceLog), args.Error(1)
}

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) FindCredentialByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

func (m *MockCredentialRepository) UpsertCredential(ctx context.Context, username string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, username, passwordHash, now)
	return args.Error(0)
}

// --- Service mocks ---

type MockAccountProvisioner struct {
	mock.Mock
}

func (m *MockAccountProvisioner) GetOrCreateAccountByName(ctx context.Context, tx pgx.Tx, name string, accountType domain.AccountType) (*domain.Account, error) {
	args := m.Called(ctx, tx, name, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountProvisioner) SeedDefaultChart(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockJournalWriter struct {
	mock.Mock
}

func (m *MockJournalWriter) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, source domain.EntrySource) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalWriter) CommitJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockJournalWriter) UpdateJournalEntry(ctx context.Context, entryID int64, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalWriter) DeleteJournalEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

type MockIntentSvc struct {
	mock.Mock
}

func (m *MockIntentSvc) TranslateIntent(ctx context.Context, intent domain.Intent, origin portssvc.EntryOrigin) (*domain.JournalEntry, error) {
	args := m.Called(ctx, intent, origin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockIntentSvc) TranslateIntentInTx(ctx context.Context, tx pgx.Tx, intent domain.Intent, origin portssvc.EntryOrigin) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tx, intent, origin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}
