package scorecmd

import (
	"io"

	"github.com/lehigh-university-libraries/lcscores/internal/config"
	"github.com/lehigh-university-libraries/lcscores/internal/logging"
)

// Options carries the persistent flags shared by every command.
type Options struct {
	Format  string
	Verbose bool

	Config *config.Config
}

// Setup loads the environment config, applies flag overrides and installs the logger.
func (o *Options) Setup(logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.Format != "" {
		cfg.Format = o.Format
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.New(cfg, logOut)
	o.Config = cfg
	return nil
}
