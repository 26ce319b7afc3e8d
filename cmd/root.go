package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/amrw/vokab/internal/app"
	"github.com/amrw/vokab/internal/config"
	"github.com/amrw/vokab/internal/logging"
	"github.com/amrw/vokab/internal/store"
	"github.com/amrw/vokab/internal/vocab"
)

var rootCmd = &cobra.Command{
	Use:   "vokab",
	Short: "Spaced-repetition vocabulary trainer",
	Long:  "Vokab — a terminal flashcard app that schedules vocabulary reviews with spaced repetition.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logPath, err := logging.DefaultLogPath()
		if err != nil {
			return err
		}
		logger, closer, err := logging.Open(logPath, slog.LevelInfo)
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()

		return app.Run(app.Options{Config: cfg, Logger: logger})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOKAB_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")
	rootCmd.PersistentFlags().Int("max_session_size", config.Default().MaxSessionSize, "Cards per study session")
	rootCmd.PersistentFlags().Int("requeue_offset", config.Default().RequeueOffset, "How far back an 'again' card is requeued")
	rootCmd.PersistentFlags().String("default_language", config.Default().DefaultLanguage, "Language assumed for new decks")

	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// openService opens the store and hydrates the vocab service for
// non-TUI subcommands. The caller must Close the returned store.
func openService(cmd *cobra.Command) (*store.Store, *vocab.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, nil, fmt.Errorf("prepare data dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	events, err := st.EventRepo()
	if err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}

	service := vocab.NewService(st.DeckRepo(), st.CardRepo(), events)
	if err := service.Load(cmd.Context(), time.Now()); err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("load library: %w", err)
	}
	return st, service, nil
}

// loadConfig merges defaults, config file, VOKAB_* env vars, and flags,
// then resolves the database path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DBPath = db
	}
	if cfg.DBPath == "" {
		cfg.DBPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
