package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-quest/internal/audio"
	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/platform/tui"
	"github.com/vovakirdan/star-quest/internal/storage"
)

const defaultDBPath = "~/.starquest/starquest.db"

// envFlags maps .env / environment keys onto flags they fill when the flag
// was not given on the command line.
var envFlags = map[string]string{
	"STARQUEST_DB":       "db",
	"STARQUEST_PROFILE":  "profile",
	"STARQUEST_SSH_ADDR": "ssh",
}

// loadEnv reads ./.env if present, applies environment defaults to unset
// flags and installs the tuning config.
func loadEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if f := cmd.Flag(name); f != nil && !f.Changed {
			if err := f.Value.Set(value); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(flagConfig)
	config.Use(cfg)
	return err
}

// newLogger builds the process logger. Interactive screens own the terminal,
// so their logs go to ~/.starquest/starquest.log instead of stderr.
func newLogger(interactive bool) (*log.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	if interactive {
		out = io.Discard
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, ".starquest")
			if err := os.MkdirAll(dir, 0o755); err == nil {
				f, err := os.OpenFile(filepath.Join(dir, "starquest.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err == nil {
					out, closer = f, f
				}
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "starquest",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger, closer
}

// profileName resolves the star profile: --profile, then the OS user.
func profileName() string {
	if flagProfile != "" {
		return flagProfile
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Strip a Windows DOMAIN\ prefix
		if i := strings.LastIndex(u.Username, `\`); i >= 0 {
			return u.Username[i+1:]
		}
		return u.Username
	}
	return "player"
}

// runtimeConfig sizes the first screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// greeting builds the finale card from STARQUEST_TO / STARQUEST_FROM.
func greeting() tui.Greeting {
	g := tui.DefaultGreeting()
	if to := os.Getenv("STARQUEST_TO"); to != "" {
		g.Title = "Happy birthday, " + to + "!"
	}
	if from := os.Getenv("STARQUEST_FROM"); from != "" {
		g.Lines = append(g.Lines, "", "With love, "+from)
	}
	return g
}

// appEnv is everything an interactive command needs.
type appEnv struct {
	logger  *log.Logger
	store   *storage.Store
	player  *audio.Player
	session *tui.Session
	closers []io.Closer
}

// openApp opens storage and audio for an interactive run. Both degrade:
// without a database stars live for the session, without a sound device
// cues are dropped.
func openApp() *appEnv {
	logger, logCloser := newLogger(true)
	env := &appEnv{logger: logger, closers: []io.Closer{logCloser}}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, stars will not persist", "error", err)
		store = nil
	}
	env.store = store

	env.player = audio.NewPlayer(logger, flagMute)
	if !flagMute {
		// Failure is logged by the player and leaves it silent
		_ = env.player.Initialize()
	}

	env.session = tui.NewSession(profileName(), store, logger, env.player)
	return env
}

// Close releases audio, storage and the log file.
func (e *appEnv) Close() {
	e.player.Close()
	if e.store != nil {
		e.store.Close()
	}
	for _, c := range e.closers {
		c.Close()
	}
}
