package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/tafuta/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   storage backend: sqlite|file|memory
//	-p string   storage path (sqlite DSN or file-store directory)
//	-b string   auth backend: mock|http
//	-a string   base URL of the HTTP auth backend
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-p", "-b", "-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite|file|memory)")
	fs.StringVar(&cfg.StoragePath, "p", cfg.StoragePath, "storage path")
	fs.StringVar(&cfg.AuthBackend, "b", cfg.AuthBackend, "auth backend (mock|http)")
	fs.StringVar(&cfg.ServerEndpointURL, "a", cfg.ServerEndpointURL, "base URL of the auth backend")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
