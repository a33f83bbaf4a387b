package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/carrental/internal/client/kv"
)

type Config struct {
	StorageDriver string        `env:"STORAGE_DRIVER"`
	DataDir       string        `env:"DATA_DIR"`
	DBFile        string        `env:"DB_FILE"`
	IdleTimeout   time.Duration `env:"IDLE_TIMEOUT"`
	TaxRate       float64       `env:"TAX_RATE"`
	LogLevel      string        `env:"LOG_LEVEL"`
	Seed          bool          `env:"SEED"`
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.StorageDriver = kv.DriverSQLite
	c.DataDir = "data"
	c.DBFile = ""
	c.IdleTimeout = 5 * time.Minute
	c.TaxRate = 0.10
	c.LogLevel = "info"
	c.Seed = true
}

// StorageFile is the database file name inside DataDir. When DBFile is empty
// it is derived from the driver.
func (c *Config) StorageFile() string {
	if c.DBFile != "" {
		return c.DBFile
	}
	if c.StorageDriver == kv.DriverBolt {
		return "carrental.bolt"
	}
	return "carrental.db"
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case kv.DriverSQLite, kv.DriverBolt, kv.DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %s", c.IdleTimeout)
	}
	if c.TaxRate < 0 {
		return fmt.Errorf("tax rate must not be negative, got %v", c.TaxRate)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then overlays the JSON file, the
// environment and finally the flags found in args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
