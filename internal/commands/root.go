// Package commands wires the CLI surface. Each command is a thin caller
// of the import and correction services.
package commands

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rahulann/bankfeed/internal/config"
	"github.com/rahulann/bankfeed/internal/database"
	"github.com/rahulann/bankfeed/internal/database/repository"
	"github.com/rahulann/bankfeed/internal/service"
	"github.com/rahulann/bankfeed/internal/suggest"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bankfeed",
		Short: "Normalize bank statement CSVs and learn transaction categories",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newSuggestCommand())
	rootCmd.AddCommand(newCorrectCommand())
	rootCmd.AddCommand(newMappingsCommand())

	return rootCmd
}

// env bundles everything a command needs: config, database, and services.
type env struct {
	cfg    config.Config
	db     *sql.DB
	logger *slog.Logger

	transactions *repository.TransactionRepo
	mappings     *repository.KeywordMappingRepo
	suggester    *suggest.Model
	importer     *service.ImportService
	corrector    *service.CorrectionService
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	txRepo := repository.NewTransactionRepo(db)
	mapRepo := repository.NewKeywordMappingRepo(db)
	suggester := suggest.NewModel(mapRepo)

	return &env{
		cfg:          cfg,
		db:           db,
		logger:       logger,
		transactions: txRepo,
		mappings:     mapRepo,
		suggester:    suggester,
		importer: &service.ImportService{
			Transactions: txRepo,
			Suggester:    suggester,
			Logger:       logger,
		},
		corrector: &service.CorrectionService{
			Transactions: txRepo,
			Suggester:    suggester,
			Catalog:      suggest.Catalog(cfg.Categories),
			Logger:       logger,
		},
	}, nil
}

func (e *env) Close() error {
	return e.db.Close()
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
