package request

// PresetSelectionRequest lists the stands checked for a preset. A missing or
// empty list clears every stand.
type PresetSelectionRequest struct {
	StandIDs []int64 `json:"standIds"`
}

// SelectedStandIDs drops ids that cannot name a stand.
func (req *PresetSelectionRequest) SelectedStandIDs() []uint {
	ids := make([]uint, 0, len(req.StandIDs))
	for _, id := range req.StandIDs {
		if id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids
}
