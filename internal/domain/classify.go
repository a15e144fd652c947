package domain

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

const (
	croLockedMin = 1
	croLockedMax = 6
)

var (
	croLabelPattern = regexp2.MustCompile(`^CRO\s*(\d+)$`, regexp2.IgnoreCase)

	lockedNumericLabels = map[string]struct{}{
		"56": {},
		"57": {},
	}
)

type LabelClass struct {
	Locked bool
}

// ClassifyLabel reports whether a stand label is permanently locked out of
// afternoon coverage. It never fails; anything it cannot interpret is
// unlocked.
func ClassifyLabel(label string) LabelClass {
	trimmed := strings.TrimSpace(label)

	compact := strings.ToUpper(strings.Join(strings.Fields(trimmed), ""))
	if _, ok := lockedNumericLabels[compact]; ok {
		return LabelClass{Locked: true}
	}

	match, err := croLabelPattern.FindStringMatch(trimmed)
	if err != nil || match == nil {
		return LabelClass{}
	}

	// Leading zeros are insignificant ("Cro 004" is stand 4); a longer
	// suffix cannot fall in the locked range.
	digits := strings.TrimLeft(match.GroupByNumber(1).String(), "0")
	if len(digits) > 2 {
		return LabelClass{}
	}

	number, err := strconv.Atoi(digits)
	if err != nil {
		return LabelClass{}
	}

	return LabelClass{Locked: number >= croLockedMin && number <= croLockedMax}
}

func IsLockedLabel(label string) bool {
	return ClassifyLabel(label).Locked
}
