package occupancy

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	defaultOccupiedThresh = 0.65
	defaultFreeThresh     = 0.196
)

// Config describes the mapped volume in the style of a map metadata
// YAML file.
type Config struct {
	Resolution     float32   `yaml:"resolution"`
	Origin         []float32 `yaml:"origin"`
	Size           []int64   `yaml:"size"`
	OccupiedThresh float32   `yaml:"occupied_thresh"`
	FreeThresh     float32   `yaml:"free_thresh"`
}

// LoadConfig reads and validates a YAML map metadata document.
// occupied_thresh and free_thresh default to 0.65 and 0.196 when
// omitted.
func LoadConfig(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c := &Config{
		OccupiedThresh: defaultOccupiedThresh,
		FreeThresh:     defaultFreeThresh,
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Resolution <= 0 {
		return errors.New("resolution must be positive")
	}
	if len(c.Origin) != 3 {
		return fmt.Errorf("origin must have 3 components, has %d", len(c.Origin))
	}
	if len(c.Size) != 3 {
		return fmt.Errorf("size must have 3 components, has %d", len(c.Size))
	}
	for _, s := range c.Size {
		if s <= 0 {
			return errors.New("size components must be positive")
		}
	}
	if c.FreeThresh < 0 || c.OccupiedThresh > 1 || c.FreeThresh > c.OccupiedThresh {
		return errors.New("thresholds must satisfy 0 <= free_thresh <= occupied_thresh <= 1")
	}
	return nil
}
