package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/carrental/internal/flagx"
)

// parseFlags overlays cfg with -d, -p, -t and -l. Other arguments are
// filtered out first so they do not trip the flag set.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-p", "-t", "-l"})

	fs := flag.NewFlagSet("carrental", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageDriver, "d", cfg.StorageDriver, "storage driver (sqlite, bbolt, memory)")
	fs.StringVar(&cfg.DataDir, "p", cfg.DataDir, "data directory")
	idle := fs.Int("t", int(cfg.IdleTimeout.Seconds()), "idle timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// -t is whole seconds; leave finer values from JSON or env alone unless set.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.IdleTimeout = time.Duration(*idle) * time.Second
		}
	})
	return nil
}
