package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, idLength)
		assert.Empty(t, strings.Trim(id, idAlphabet))
		assert.False(t, seen[id])
		seen[id] = true
	}
}
