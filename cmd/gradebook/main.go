// Command gradebook is an interactive console grade book.
//
// Settings come from an optional gradebook.json in the working directory.
// By default the roster is kept in grades.txt next to it; setting "file"
// to "" runs without persistence.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jpl-au/gradebook"
	"github.com/jpl-au/gradebook/internal/config"
	"github.com/jpl-au/gradebook/internal/logging"
	"github.com/jpl-au/gradebook/internal/shell"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gradebook: %v\n", err)
		return 1
	}

	log, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gradebook: %v\n", err)
		return 1
	}
	defer closeLog()

	opts := shell.Options{
		Logger:        log,
		HashAlgorithm: cfg.Algorithm(),
	}

	if cfg.Persistence() {
		dir, name, sc := cfg.Store()
		store, err := gradebook.Open(dir, name, sc)
		if err != nil {
			// Persistence is optional; carry on without it.
			log.Error("open roster file", "file", cfg.File, "error", err)
			fmt.Fprintf(os.Stderr, "WARNING: cannot use %s (%v); grades will not be saved.\n", cfg.File, err)
		} else {
			defer store.Close()
			opts.Store = store
			log.Info("using roster file", slog.String("file", cfg.File), slog.Bool("compress", sc.Compress))
		}
	}

	sh := shell.New(os.Stdin, os.Stdout, opts)
	sh.Load()
	if err := sh.Run(); err != nil {
		return 1
	}
	return 0
}
