package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDigits(t *testing.T) {
	assert.Equal(t, "1403/05/12", NormalizeDigits("۱۴۰۳/۰۵/۱۲"))
	assert.Equal(t, "250", NormalizeDigits("٢٥٠"))
	assert.Equal(t, "abc 42", NormalizeDigits("abc 42"))
}
