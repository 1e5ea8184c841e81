package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Format(t *testing.T) {
	id, err := Run()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(id, "run-"), "ID: %s", id)
	suffix := strings.TrimPrefix(id, "run-")
	assert.Len(t, suffix, 12)

	for _, char := range suffix {
		assert.True(t,
			(char >= 'a' && char <= 'z') || (char >= '0' && char <= '9'),
			"Character %c should be lowercase alphanumeric", char)
	}
}

func TestRun_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 500

	for range count {
		id, err := Run()
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}
