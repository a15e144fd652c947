package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetCatalog_MatchesFallback(t *testing.T) {
	require.Len(t, presetCatalog, len(presetTypeFallback))
	for i, tag := range presetTypeFallback {
		assert.Equal(t, tag, string(presetCatalog[i]))
	}
}

func TestListPresetTypes(t *testing.T) {
	types := ListPresetTypes()
	assert.Equal(t, []PresetType{
		PresetWeekday,
		PresetWeekend,
		PresetMemorialDay,
		PresetIndependenceDay,
		PresetLaborDay,
	}, types)

	types[0] = "CHANGED"
	assert.Equal(t, PresetWeekday, ListPresetTypes()[0])
}

func TestListPresetTypes_UsesFallbackWhenCatalogEmpty(t *testing.T) {
	saved := presetCatalog
	presetCatalog = nil
	t.Cleanup(func() { presetCatalog = saved })

	types := ListPresetTypes()
	require.Len(t, types, 5)
	assert.Equal(t, PresetWeekday, types[0])
	assert.Equal(t, PresetLaborDay, types[4])
}

func TestIsValidPresetType(t *testing.T) {
	for _, tag := range presetTypeFallback {
		assert.True(t, IsValidPresetType(tag), tag)
	}

	assert.False(t, IsValidPresetType(""))
	assert.False(t, IsValidPresetType("weekday"))
	assert.False(t, IsValidPresetType("CHRISTMAS"))
}

func TestPresetType_Title(t *testing.T) {
	assert.Equal(t, "Independence Day", PresetIndependenceDay.Title())
	assert.Equal(t, "UNKNOWN", PresetType("UNKNOWN").Title())
}

func TestZone(t *testing.T) {
	for _, z := range Zones {
		assert.True(t, z.IsValid(), z)
	}
	assert.False(t, Zone("NOT_A_ZONE").IsValid())
	assert.Equal(t, "57th Street", ZoneFiftySeventh.Label())
	assert.Equal(t, "NOT_A_ZONE", Zone("NOT_A_ZONE").Label())
}

func TestZone_Rank(t *testing.T) {
	for i, z := range Zones {
		assert.Equal(t, i, z.Rank(), z)
	}
	assert.Equal(t, len(Zones), Zone("NOT_A_ZONE").Rank())
}

func TestSortStands(t *testing.T) {
	stands := []Stand{
		{Label: "57", Zone: ZoneFiftySeventh},
		{Label: "2", Zone: ZoneResortSouth},
		{Label: "Cro 1", Zone: ZoneCroatan},
		{Label: "15", Zone: ZoneResortMiddle},
		{Label: "3", Zone: ZoneResortSouth},
		{Label: "29", Zone: ZoneResortNorth},
	}

	SortStands(stands)

	labels := make([]string, len(stands))
	for i, s := range stands {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{"Cro 1", "2", "3", "15", "29", "57"}, labels)
}
