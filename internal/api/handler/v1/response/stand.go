package response

import "github.com/vbls/standconsole/internal/domain"

type StandList struct {
	Stands []domain.Stand `json:"stands"`
	Zones  []ZoneOption   `json:"zones"`
}

type ZoneOption struct {
	Value domain.Zone `json:"value"`
	Label string      `json:"label"`
}

func NewZoneOptions() []ZoneOption {
	options := make([]ZoneOption, 0, len(domain.Zones))
	for _, z := range domain.Zones {
		options = append(options, ZoneOption{Value: z, Label: z.Label()})
	}
	return options
}
