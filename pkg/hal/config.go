// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// HardwareConfig is the decoded form of a HAL hardware TOML document: two
// tables of device entries, keyed by section name.
type HardwareConfig struct {
	Thermometers []DeviceConfig `toml:"thermometers"`
	Heaters      []DeviceConfig `toml:"heaters"`
}

// DeviceConfig is one entry under [[thermometers]] or [[heaters]].
type DeviceConfig struct {
	Name          string         `toml:"name"`
	Hardware      string         `toml:"hardware"`
	Setup         map[string]any `toml:"setup"`
	MaxValue      float64        `toml:"max_value"`
	ConversionCSV string         `toml:"conversion_csv"`
}

// LoadHardwareConfig parses a HAL hardware TOML file from path.
func LoadHardwareConfig(path string) (*HardwareConfig, error) {
	var cfg HardwareConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigMalformed, path, err)
	}
	return &cfg, nil
}
