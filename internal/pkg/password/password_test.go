package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("s3cret-pass")
	require.NoError(t, err)
	second, err := Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "s3cret-pass")
}

func TestVerify(t *testing.T) {
	hash, err := Hash("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, Verify("s3cret-pass", hash))
	assert.False(t, Verify("wrong-pass", hash))
	assert.False(t, Verify("s3cret-pass", "not-a-bcrypt-hash"))
	assert.False(t, Verify("", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("12345678"))
	assert.False(t, ValidatePassword("1234567"))
	assert.False(t, ValidatePassword(""))
}
