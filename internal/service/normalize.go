package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vbls/standconsole/internal/domain"
)

const MaxLabelLength = 32

var zoneValues = func() []interface{} {
	values := make([]interface{}, len(domain.Zones))
	for i, z := range domain.Zones {
		values[i] = string(z)
	}
	return values
}()

// NormalizeStand validates and canonicalizes a stand creation request.
// Rules run in order: label, zone, then the lock derived from the label.
func NormalizeStand(label, zone string, supportsAS any) (domain.StandCreateInput, error) {
	normalizedLabel, err := normalizeLabel(label)
	if err != nil {
		return domain.StandCreateInput{}, err
	}

	normalizedZone, err := normalizeZone(zone)
	if err != nil {
		return domain.StandCreateInput{}, err
	}

	neverSupportsAS := domain.ClassifyLabel(normalizedLabel).Locked

	return domain.StandCreateInput{
		Label:           normalizedLabel,
		Zone:            normalizedZone,
		SupportsAS:      !neverSupportsAS && CoerceFlag(supportsAS),
		NeverSupportsAS: neverSupportsAS,
	}, nil
}

// CoerceFlag reads a checkbox-style flag. Only true, "true", "1", "on" and
// "yes" (any case, surrounding spaces ignored) count as set.
func CoerceFlag(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case *bool:
		return v != nil && *v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "on", "yes":
			return true
		}
	}

	return false
}

func normalizeLabel(label string) (string, error) {
	trimmed := strings.TrimSpace(label)

	err := validation.Validate(trimmed,
		validation.Required.Error("Label is required."),
		maxUTF16Length(MaxLabelLength, fmt.Sprintf("Label must be %d characters or fewer.", MaxLabelLength)),
	)
	if err != nil {
		return "", domain.NewValidationError(err.Error())
	}

	return trimmed, nil
}

// maxUTF16Length counts UTF-16 code units. Characters outside the BMP
// count twice.
func maxUTF16Length(limit int, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if len(utf16.Encode([]rune(s))) > limit {
			return errors.New(message)
		}
		return nil
	})
}

func normalizeZone(zone string) (domain.Zone, error) {
	if err := validation.Validate(zone, validation.Required.Error("Zone is required.")); err != nil {
		return "", domain.NewValidationError(err.Error())
	}

	if err := validation.Validate(zone, validation.In(zoneValues...).Error("Zone selection is invalid.")); err != nil {
		return "", domain.NewValidationError(err.Error())
	}

	return domain.Zone(zone), nil
}
