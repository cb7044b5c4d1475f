package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/auracrypt/auracrypt/internal/client"
	"github.com/auracrypt/auracrypt/internal/config"
	"github.com/auracrypt/auracrypt/internal/logger"
	"github.com/auracrypt/auracrypt/internal/paths"
	"github.com/auracrypt/auracrypt/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	log.Info().
		Str("version", orNA(buildVersion)).
		Str("date", orNA(buildDate)).
		Str("commit", orNA(buildCommit)).
		Msg("auracrypt starting")

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		log.Fatal().Err(err).Msg("app run error")
	}
}

// newLogger writes to the log file inside the data directory: the UI
// owns the terminal, so nothing may print to it while it runs.
func newLogger(cfg *config.StructuredConfig) *logger.Logger {
	if cfg.Storage.DataDir != "" {
		return logger.NewFileLogger("auracrypt", paths.ResolveIn(cfg.Storage.DataDir).LogPath)
	}
	if appPaths, err := paths.Resolve(); err == nil {
		if err := appPaths.EnsureDirs(); err == nil {
			return logger.NewFileLogger("auracrypt", appPaths.LogPath)
		}
	}
	return logger.NewLogger("auracrypt")
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
