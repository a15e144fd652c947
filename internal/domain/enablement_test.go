package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetEnabled(t *testing.T) {
	unlocked := StandLock{ID: 1}
	locked := StandLock{ID: 2, NeverSupportsAS: true}

	assert.True(t, PresetEnabled(unlocked, true))
	assert.False(t, PresetEnabled(unlocked, false))
	assert.False(t, PresetEnabled(locked, true))
	assert.False(t, PresetEnabled(locked, false))
}

func TestResolvePresetEnabled(t *testing.T) {
	unlocked := StandLock{ID: 1}
	locked := StandLock{ID: 2, NeverSupportsAS: true}

	assert.True(t, ResolvePresetEnabled(unlocked, nil))
	assert.False(t, ResolvePresetEnabled(locked, nil))
	assert.False(t, ResolvePresetEnabled(unlocked, &AfternoonPresetEntry{Enabled: false}))
	assert.False(t, ResolvePresetEnabled(locked, &AfternoonPresetEntry{Enabled: true}))
}

func TestBuildPresetEntries(t *testing.T) {
	stands := []StandLock{
		{ID: 1},
		{ID: 2, NeverSupportsAS: true},
		{ID: 3},
	}
	selected := map[uint]struct{}{1: {}, 2: {}, 99: {}}

	entries := BuildPresetEntries(7, stands, selected)

	require.Len(t, entries, len(stands))
	assert.Equal(t, []AfternoonPresetEntry{
		{StandID: 1, PresetID: 7, Enabled: true},
		{StandID: 2, PresetID: 7, Enabled: false},
		{StandID: 3, PresetID: 7, Enabled: false},
	}, entries)
}

func TestSelectAll(t *testing.T) {
	stands := []StandLock{{ID: 1}, {ID: 2, NeverSupportsAS: true}}

	entries := BuildPresetEntries(1, stands, SelectAll(stands))

	assert.True(t, entries[0].Enabled)
	assert.False(t, entries[1].Enabled)
}

func TestValidationError(t *testing.T) {
	var err error = NewValidationError("Label is required.")
	assert.EqualError(t, err, "Label is required.")
}
