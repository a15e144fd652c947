package response

import "github.com/vbls/standconsole/internal/domain"

type PresetSummary struct {
	PresetType domain.PresetType `json:"presetType"`
	Title      string            `json:"title"`
}

type PresetView struct {
	PresetType domain.PresetType         `json:"presetType"`
	Title      string                    `json:"title"`
	Stands     []domain.PresetStandState `json:"stands"`
}

// PresetUpdateResult is the body of a preset submission. Error is only set
// when Success is false.
type PresetUpdateResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
