package otp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode_FormatAndRange(t *testing.T) {
	for i := 0; i < 2000; i++ {
		code := GenerateCode()
		require.Len(t, code, CodeLength)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, minCode)
		assert.LessOrEqual(t, n, maxCode)
	}
}

func TestGenerateCode_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		seen[GenerateCode()] = struct{}{}
	}
	assert.Greater(t, len(seen), 150)
}
