package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyBuilderPrefixes(t *testing.T) {
	tests := []struct {
		environment string
		expected    string
	}{
		{"production", "prod"},
		{"development", "development"},
		{"staging", "staging"},
		{"test", "test"},
		{"anything-else", "prod"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			kb := NewKeyBuilder(tt.environment)
			assert.Equal(t, tt.expected, kb.GetPrefix())
		})
	}
}

func TestKeyBuilderKeys(t *testing.T) {
	kb := NewKeyBuilder("test")

	assert.Equal(t, "test:session:user:p1", kb.KeySessionUser("p1"))
	assert.Equal(t, "test:profile:p1:teams", kb.KeyOwnedTeams("p1"))
}
