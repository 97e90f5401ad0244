package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecordMovesQueryToFront(t *testing.T) {
	s := newMemoryStore(t)
	h := NewHistoryService(s, 3, nil)

	h.Record("batman")
	h.Record("alien")
	h.Record("  Batman ")

	assert.Equal(t, []string{"Batman", "alien"}, h.Recent())
}

func TestHistoryIsCapped(t *testing.T) {
	h := NewHistoryService(newMemoryStore(t), 2, nil)

	h.Record("a")
	h.Record("b")
	h.Record("c")

	assert.Equal(t, []string{"c", "b"}, h.Recent())
}

func TestHistoryPersists(t *testing.T) {
	s := newMemoryStore(t)
	NewHistoryService(s, 0, nil).Record("matrix")

	reloaded := NewHistoryService(s, 0, nil)
	assert.Equal(t, []string{"matrix"}, reloaded.Recent())

	reloaded.Clear()
	stored, ok := s.GetHistory()
	require.True(t, ok)
	assert.Empty(t, stored)
}

func TestHistoryIgnoresBlankAndSurvivesWriteFailure(t *testing.T) {
	h := NewHistoryService(failingStore{}, 0, nil)

	h.Record("   ")
	assert.Empty(t, h.Recent())

	h.Record("dune")
	assert.Equal(t, []string{"dune"}, h.Recent())
}
