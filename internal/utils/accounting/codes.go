package accounting

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/hesabdar/internal/apperrors"
)

// FlatCodeWidth is the zero-padded width of codes given to auto-created accounts.
const FlatCodeWidth = 4

// FirstFlatCode is used when no account has a numeric code yet.
const FirstFlatCode = "1001"

func maxNumeric(codes []string) (int64, bool) {
	var highest int64
	found := false
	for _, c := range codes {
		n, err := strconv.ParseInt(c, 10, 64)
		if err != nil {
			continue
		}
		if !found || n > highest {
			highest = n
			found = true
		}
	}
	return highest, found
}

// NextTopLevelCode returns the code for a new root account given the codes of
// the existing roots. Non-numeric codes are ignored.
func NextTopLevelCode(rootCodes []string) string {
	highest, ok := maxNumeric(rootCodes)
	if !ok {
		return "1"
	}
	return strconv.FormatInt(highest+1, 10)
}

// NextChildCode returns the code for a new child of parentCode given the
// codes of its existing direct children.
func NextChildCode(parentCode string, siblingCodes []string) (string, error) {
	if highest, ok := maxNumeric(siblingCodes); ok {
		return strconv.FormatInt(highest+1, 10), nil
	}
	parent, err := strconv.ParseInt(parentCode, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: parent code %q is not numeric", apperrors.ErrValidation, parentCode)
	}
	return strconv.FormatInt(parent*10+1, 10), nil
}

// NextFlatCode returns the code for an auto-created account from the code of
// the most recently created numeric-coded account.
func NextFlatCode(lastCode string) string {
	n, err := strconv.ParseInt(lastCode, 10, 64)
	if err != nil {
		return FirstFlatCode
	}
	return fmt.Sprintf("%0*d", FlatCodeWidth, n+1)
}

// IncrementCode returns the next candidate after code, keeping its width when
// it was zero padded. Used when a concurrent writer already took code.
func IncrementCode(code string) string {
	n, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return code + "1"
	}
	return fmt.Sprintf("%0*d", len(code), n+1)
}
