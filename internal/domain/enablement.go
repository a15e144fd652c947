package domain

// PresetEnabled decides the enabled value of a preset entry. Every write
// path goes through here; a locked stand is never enabled whatever the
// caller asked for.
func PresetEnabled(stand StandLock, selected bool) bool {
	return !stand.NeverSupportsAS && selected
}

// DefaultPresetEnabled is the advisory value shown for a stand that has no
// recorded entry yet. It is not persisted.
func DefaultPresetEnabled(stand StandLock) bool {
	return PresetEnabled(stand, true)
}

// ResolvePresetEnabled returns what a reader should display for a stand:
// the recorded entry when there is one, the default otherwise.
func ResolvePresetEnabled(stand StandLock, entry *AfternoonPresetEntry) bool {
	if entry == nil {
		return DefaultPresetEnabled(stand)
	}
	return PresetEnabled(stand, entry.Enabled)
}

// BuildPresetEntries computes exactly one entry per stand for a preset.
func BuildPresetEntries(presetID uint, stands []StandLock, selected map[uint]struct{}) []AfternoonPresetEntry {
	entries := make([]AfternoonPresetEntry, 0, len(stands))
	for _, stand := range stands {
		_, isSelected := selected[stand.ID]
		entries = append(entries, AfternoonPresetEntry{
			StandID:  stand.ID,
			PresetID: presetID,
			Enabled:  PresetEnabled(stand, isSelected),
		})
	}
	return entries
}

// SelectAll marks every stand as selected.
func SelectAll(stands []StandLock) map[uint]struct{} {
	selected := make(map[uint]struct{}, len(stands))
	for _, stand := range stands {
		selected[stand.ID] = struct{}{}
	}
	return selected
}
