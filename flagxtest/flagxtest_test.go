package flagxtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	logger := NewMockLogger(t)

	logger.Debug("d")
	logger.Info("i", "k", "v")
	logger.Warn("w")
	logger.Error(errors.New("boom"), "e")

	entries := logger.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "DEBUG", entries[0].Level)
	assert.Equal(t, "i", entries[1].Message)
	assert.Equal(t, []any{"k", "v"}, entries[1].Fields)
	assert.EqualError(t, entries[3].Error, "boom")

	logger.AssertLogged("INFO", "i")

	logger.Clear()
	assert.Empty(t, logger.Entries())
}

func TestMockLoggerWith(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With("component", "test")

	child.Info("hello")
	logger.AssertLogged("INFO", "hello")
}
