package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/tovrstra/python-unidiff/internal/adapter/cli"
	"github.com/tovrstra/python-unidiff/internal/adapter/git"
	"github.com/tovrstra/python-unidiff/internal/adapter/store/sqlite"
	"github.com/tovrstra/python-unidiff/internal/config"
	"github.com/tovrstra/python-unidiff/internal/store"
	"github.com/tovrstra/python-unidiff/internal/version"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// Create cancellable context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "unidiff",
		EnvPrefix:   "UNIDIFF",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	repoDir := cfg.Git.RepositoryDir
	if repoDir == "" {
		repoDir = "."
	}
	gitEngine := git.NewEngine(repoDir)

	// Initialize history store if enabled
	var history store.Store
	if cfg.Store.Enabled {
		storeDir := filepath.Dir(cfg.Store.Path)
		if err := os.MkdirAll(storeDir, 0o755); err != nil {
			log.Printf("warning: failed to create store directory: %v", err)
		} else {
			sqliteStore, err := sqlite.NewStore(cfg.Store.Path)
			if err != nil {
				log.Printf("warning: failed to initialize store: %v", err)
			} else {
				history = sqliteStore
				defer history.Close()
			}
		}
	}

	root := cli.NewRootCommand(cli.Dependencies{
		Git:             gitEngine,
		History:         history,
		DefaultEncoding: cfg.Input.Encoding,
		DefaultFormat:   cfg.Output.Format,
		DefaultBaseRef:  cfg.Git.BaseRef,
		Colored:         resolveColor(cfg.Output.Color),
		Version:         version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

// resolveColor maps the config color mode onto a concrete decision:
// "always" and "never" are explicit, anything else falls back to TTY
// detection.
func resolveColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return cli.IsOutputTerminal()
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "unidiff"))
	}
	return paths
}
