package domain

import (
	"sort"
	"time"
)

type Zone string

const (
	ZoneCroatan      Zone = "CROATAN"
	ZoneResortSouth  Zone = "RESORT_SOUTH"
	ZoneResortMiddle Zone = "RESORT_MIDDLE"
	ZoneResortNorth  Zone = "RESORT_NORTH"
	ZoneFiftySeventh Zone = "FIFTY_SEVENTH"
)

// Zones lists every zone in display order.
var Zones = []Zone{
	ZoneCroatan,
	ZoneResortSouth,
	ZoneResortMiddle,
	ZoneResortNorth,
	ZoneFiftySeventh,
}

var zoneLabels = map[Zone]string{
	ZoneCroatan:      "Croatan",
	ZoneResortSouth:  "Resort South",
	ZoneResortMiddle: "Resort Middle",
	ZoneResortNorth:  "Resort North",
	ZoneFiftySeventh: "57th Street",
}

var zoneRanks = func() map[Zone]int {
	ranks := make(map[Zone]int, len(Zones))
	for i, z := range Zones {
		ranks[z] = i
	}
	return ranks
}()

// Rank is the position of z in Zones. Unknown zones rank after every
// catalog zone.
func (z Zone) Rank() int {
	if rank, ok := zoneRanks[z]; ok {
		return rank
	}
	return len(Zones)
}

// SortStands orders stands by zone catalog position. The existing order is
// kept within a zone.
func SortStands(stands []Stand) {
	sort.SliceStable(stands, func(i, j int) bool {
		return stands[i].Zone.Rank() < stands[j].Zone.Rank()
	})
}

func (z Zone) IsValid() bool {
	_, ok := zoneLabels[z]
	return ok
}

func (z Zone) Label() string {
	if label, ok := zoneLabels[z]; ok {
		return label
	}
	return string(z)
}

type Stand struct {
	ID              uint      `json:"id"`
	Label           string    `json:"label"`
	Zone            Zone      `json:"zone"`
	SupportsAS      bool      `json:"supportsAS"`
	NeverSupportsAS bool      `json:"neverSupportsAS"`
	DoubleStaffed   bool      `json:"doubleStaffed"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (s Stand) Lock() StandLock {
	return StandLock{ID: s.ID, NeverSupportsAS: s.NeverSupportsAS}
}

// StandCreateInput is a validated stand payload. It always carries the
// derived lock so storage never recomputes it.
type StandCreateInput struct {
	Label           string `json:"label"`
	Zone            Zone   `json:"zone"`
	SupportsAS      bool   `json:"supportsAS"`
	NeverSupportsAS bool   `json:"neverSupportsAS"`
}

// StandLock is the id + lock projection read by the preset sync.
type StandLock struct {
	ID              uint
	NeverSupportsAS bool
}
