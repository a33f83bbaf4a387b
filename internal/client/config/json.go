package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/carrental/internal/flagx"
	"github.com/dmitrijs2005/carrental/internal/timex"
)

// JsonConfig is the on-disk shape. Pointer fields distinguish absent keys
// from zero values.
type JsonConfig struct {
	StorageDriver *string         `json:"storage_driver"`
	DataDir       *string         `json:"data_dir"`
	DBFile        *string         `json:"db_file"`
	IdleTimeout   *timex.Duration `json:"idle_timeout"`
	TaxRate       *float64        `json:"tax_rate"`
	LogLevel      *string         `json:"log_level"`
	Seed          *bool           `json:"seed"`
}

// parseJson overlays cfg with the file named by -c/-config. No flag, no-op.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.StorageDriver != nil {
		cfg.StorageDriver = *jc.StorageDriver
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.DBFile != nil {
		cfg.DBFile = *jc.DBFile
	}
	if jc.IdleTimeout != nil {
		cfg.IdleTimeout = jc.IdleTimeout.Duration
	}
	if jc.TaxRate != nil {
		cfg.TaxRate = *jc.TaxRate
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Seed != nil {
		cfg.Seed = *jc.Seed
	}
	return nil
}
