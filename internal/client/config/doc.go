// Package config loads runtime configuration for the car rental CLI.
//
// Sources, in increasing precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c or -config.
//  3. Environment variables prefixed with CARRENTAL_.
//  4. Command-line flags.
//
// Supported flags
//
//	-d string   storage driver: sqlite, bbolt or memory
//	-p string   data directory
//	-t int      idle timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "5m" or integer
// nanoseconds. Absent keys leave the earlier value in place:
//
//	{
//	  "storage_driver": "sqlite",
//	  "data_dir": "data",
//	  "db_file": "carrental.db",
//	  "idle_timeout": "5m",
//	  "tax_rate": 0.1,
//	  "log_level": "info",
//	  "seed": true
//	}
//
// # Environment
//
//	CARRENTAL_STORAGE_DRIVER, CARRENTAL_DATA_DIR, CARRENTAL_DB_FILE,
//	CARRENTAL_IDLE_TIMEOUT (e.g. "90s"), CARRENTAL_TAX_RATE,
//	CARRENTAL_LOG_LEVEL, CARRENTAL_SEED
package config
