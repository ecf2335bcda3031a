package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// seedFile is the on-disk layout of a seed file:
//
//	events:
//	  - name: Concert
//	    eventDates: ["2025-01-20", "2025-01-21"]
//	    details: Live music
type seedFile struct {
	Events []model.CreateEventRequest `yaml:"events"`
}

// LoadSeed reads the events listed in a YAML seed file.  Every entry must
// have a name, at least one date and details.
func LoadSeed(path string) ([]model.CreateEventRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	for i, ev := range sf.Events {
		if ev.Name == "" || len(ev.EventDates) == 0 || ev.Details == "" {
			return nil, fmt.Errorf("seed file %s: event %d needs name, eventDates and details", path, i)
		}
	}
	return sf.Events, nil
}
