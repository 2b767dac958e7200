// Package commands wires the FinanceFlow core into a CLI: project
// init, snippet parsing, encrypted ledger entry, and billing-period
// queries.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/financeflow-dev/financeflow/internal/buildinfo"
	"github.com/financeflow-dev/financeflow/internal/config"
	"github.com/financeflow-dev/financeflow/internal/keystore"
	"github.com/financeflow-dev/financeflow/internal/ledger"
	"github.com/financeflow-dev/financeflow/internal/vault"
)

// ConfigFileName is the project configuration file.
const ConfigFileName = "financeflow.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "financeflow",
		Short:   "Private personal finance tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newPeriodCommand())

	return rootCmd
}

// services bundles everything a ledger-touching command needs.
type services struct {
	cfg    *config.Config
	userID uuid.UUID
	ledger *ledger.Service
	close  func() error
}

// openServices loads the project at dir and opens the key database.
func openServices(dir string) (*services, error) {
	cfg, err := config.Load(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(cfg.User.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in config: %w", err)
	}

	storage, err := keystore.OpenSQLite(filepath.Join(dir, cfg.Keystore.Path))
	if err != nil {
		return nil, err
	}

	engine := vault.NewEngine(keystore.NewStore(storage))
	return &services{
		cfg:    cfg,
		userID: userID,
		ledger: ledger.NewService(dir, engine),
		close:  storage.Close,
	}, nil
}
