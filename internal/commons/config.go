package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"tavola/internal/config"
)

// LoadConfig reads the yaml config file and overlays it on top of the
// env-based defaults. Missing file is not fatal; env alone is enough.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
