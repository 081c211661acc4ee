package config

import (
	"flag"
	"os"

	"github.com/PlanarStandardMTG/planar-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-m string   runtime mode: production or development
//	-d string   path to the local client database
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.Mode, "m", cfg.Mode, "runtime mode (production|development)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local client database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
