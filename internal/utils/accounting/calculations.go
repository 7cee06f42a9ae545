package accounting

import (
	"fmt"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// AmountScale is the number of fractional digits a stored line amount keeps.
const AmountScale = 2

// SumByType totals line amounts per side.
func SumByType(transactions []domain.Transaction) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, txn := range transactions {
		switch txn.TransactionType {
		case domain.Debit:
			debit = debit.Add(txn.Amount)
		case domain.Credit:
			credit = credit.Add(txn.Amount)
		}
	}
	return debit, credit
}

// ValidateJournalBalance checks that a line set is well formed and that its
// debits equal its credits within BalanceTolerance.
func ValidateJournalBalance(transactions []domain.Transaction) error {
	if len(transactions) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two transaction lines", apperrors.ErrValidation)
	}

	for i, txn := range transactions {
		if !txn.TransactionType.IsValid() {
			return fmt.Errorf("%w: line %d has invalid transaction type %q", apperrors.ErrValidation, i+1, txn.TransactionType)
		}
		if txn.Amount.IsNegative() {
			return fmt.Errorf("%w: line %d has negative amount %s", apperrors.ErrValidation, i+1, txn.Amount.String())
		}
		if !txn.Amount.Equal(txn.Amount.Round(AmountScale)) {
			return fmt.Errorf("%w: line %d amount %s has more than %d decimal places", apperrors.ErrValidation, i+1, txn.Amount.String(), AmountScale)
		}
	}

	debit, credit := SumByType(transactions)
	if debit.Sub(credit).Abs().GreaterThan(BalanceTolerance) {
		return apperrors.NewUnbalancedError(debit, credit)
	}
	return nil
}

// CalculateBalanceChanges returns the net movement each line set applies to
// the cached balance of the accounts it touches.
func CalculateBalanceChanges(transactions []domain.Transaction) map[int64]decimal.Decimal {
	changes := make(map[int64]decimal.Decimal)
	for _, txn := range transactions {
		changes[txn.AccountID] = changes[txn.AccountID].Add(txn.SignedAmount())
	}
	return changes
}

// NegateChanges flips every balance change, for undoing a line set.
func NegateChanges(changes map[int64]decimal.Decimal) map[int64]decimal.Decimal {
	out := make(map[int64]decimal.Decimal, len(changes))
	for id, amt := range changes {
		out[id] = amt.Neg()
	}
	return out
}

// MergeChanges adds the movements in b onto a copy of a.
func MergeChanges(a, b map[int64]decimal.Decimal) map[int64]decimal.Decimal {
	out := make(map[int64]decimal.Decimal, len(a)+len(b))
	for id, amt := range a {
		out[id] = amt
	}
	for id, amt := range b {
		out[id] = out[id].Add(amt)
	}
	return out
}

// RunningBalances converts ordered ledger lines into ledger rows, carrying a
// balance that starts at zero, rises with debits and falls with credits.
func RunningBalances(lines []domain.LedgerLine) []domain.LedgerRow {
	rows := make([]domain.LedgerRow, 0, len(lines))
	balance := decimal.Zero
	for _, line := range lines {
		row := domain.LedgerRow{
			Date:        line.Date,
			EntryNumber: line.EntryNumber,
			Description: line.Description,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if line.TransactionType == domain.Debit {
			row.Debit = line.Amount
			balance = balance.Add(line.Amount)
		} else {
			row.Credit = line.Amount
			balance = balance.Sub(line.Amount)
		}
		row.Balance = balance
		rows = append(rows, row)
	}
	return rows
}
