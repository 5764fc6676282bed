package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "alice", "user_42", strings.Repeat("a", 32)}
	for _, u := range valid {
		assert.NoError(t, ValidateUsername(u), "username %q should be valid", u)
	}

	invalid := []string{"", "ab", "a b", "user!", "héllo", strings.Repeat("a", 33)}
	for _, u := range invalid {
		assert.Error(t, ValidateUsername(u), "username %q should be invalid", u)
	}
}

func TestValidateUsername_TrimsWhitespace(t *testing.T) {
	assert.NoError(t, ValidateUsername("  alice  "))
	assert.Error(t, ValidateUsername("  ab  "))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword(strings.Repeat("p", 128)))

	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(strings.Repeat("p", 129)))
}
