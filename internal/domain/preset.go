package domain

import "time"

type PresetType string

const (
	PresetWeekday         PresetType = "WEEKDAY"
	PresetWeekend         PresetType = "WEEKEND"
	PresetMemorialDay     PresetType = "MEMORIAL_DAY"
	PresetIndependenceDay PresetType = "INDEPENDENCE_DAY"
	PresetLaborDay        PresetType = "LABOR_DAY"
)

var presetCatalog = []PresetType{
	PresetWeekday,
	PresetWeekend,
	PresetMemorialDay,
	PresetIndependenceDay,
	PresetLaborDay,
}

// presetTypeFallback must spell the catalog byte-for-byte.
var presetTypeFallback = [...]string{
	"WEEKDAY",
	"WEEKEND",
	"MEMORIAL_DAY",
	"INDEPENDENCE_DAY",
	"LABOR_DAY",
}

var presetTitles = map[PresetType]string{
	PresetWeekday:         "Weekday",
	PresetWeekend:         "Weekend",
	PresetMemorialDay:     "Memorial Day",
	PresetIndependenceDay: "Independence Day",
	PresetLaborDay:        "Labor Day",
}

var presetLookup = buildPresetLookup()

// ListPresetTypes returns the preset catalog in display order.
func ListPresetTypes() []PresetType {
	if len(presetCatalog) == 0 {
		types := make([]PresetType, len(presetTypeFallback))
		for i, tag := range presetTypeFallback {
			types[i] = PresetType(tag)
		}
		return types
	}

	types := make([]PresetType, len(presetCatalog))
	copy(types, presetCatalog)
	return types
}

// IsValidPresetType gates every preset-directed write.
func IsValidPresetType(tag string) bool {
	_, ok := presetLookup[PresetType(tag)]
	return ok
}

func (p PresetType) Title() string {
	if title, ok := presetTitles[p]; ok {
		return title
	}
	return string(p)
}

func buildPresetLookup() map[PresetType]struct{} {
	types := ListPresetTypes()
	lookup := make(map[PresetType]struct{}, len(types))
	for _, t := range types {
		lookup[t] = struct{}{}
	}
	return lookup
}

type AfternoonPreset struct {
	ID         uint       `json:"id"`
	PresetType PresetType `json:"presetType"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type AfternoonPresetEntry struct {
	ID       uint `json:"id"`
	StandID  uint `json:"standId"`
	PresetID uint `json:"presetId"`
	Enabled  bool `json:"enabled"`
}

// PresetStandState is one row of a preset as shown to an operator.
type PresetStandState struct {
	StandID  uint   `json:"standId"`
	Label    string `json:"label"`
	Zone     Zone   `json:"zone"`
	Enabled  bool   `json:"enabled"`
	Locked   bool   `json:"locked"`
	Recorded bool   `json:"recorded"`
}
