package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = environment
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeySessionUser returns the key holding a session's current user record.
func (kb *KeyBuilder) KeySessionUser(sessionID string) string {
	return kb.BuildKey(fmt.Sprintf(KeySessionUser, sessionID))
}

// KeyOwnedTeams returns the key for a profile's created virtual-team ids.
func (kb *KeyBuilder) KeyOwnedTeams(profileID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyOwnedTeams, profileID))
}
