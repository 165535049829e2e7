package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/swipedeck/internal/config"
	"github.com/jask/swipedeck/internal/database"
	"github.com/jask/swipedeck/internal/database/repository"
	"github.com/jask/swipedeck/internal/logging"
	"github.com/jask/swipedeck/internal/nav"
	"github.com/jask/swipedeck/internal/record"
	"github.com/jask/swipedeck/internal/service"
	"github.com/jask/swipedeck/internal/tui"
)

var version = "dev"

var (
	// Global flags
	configPath string
	verbose    bool

	// Deck flags
	startID  string
	location string
)

var rootCmd = &cobra.Command{
	Use:   "swipedeck",
	Short: "Swipe through profiles one card at a time",
	Long: `swipedeck shows one profile card at a time from a record service.

Drag the card (or use the arrow keys) past the threshold to decide; the next
card loads and the current record id is kept in the location, so back and
forward revisit earlier cards.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeck(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "swipedeck", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $SWIPEDECK_CONFIG or ~/.config/swipedeck/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&startID, "id", "", "Open this record first")
	rootCmd.Flags().StringVar(&location, "location", "", "Starting location (default: ui.path)")

	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "swipedeck:", err)
		os.Exit(1)
	}
}

// startLocation combines the location flag, the configured path and --id.
func startLocation(cfg config.Config) (string, error) {
	loc := location
	if loc == "" {
		loc = cfg.UI.Path
	}
	u, err := url.Parse(loc)
	if err != nil {
		return "", fmt.Errorf("parse location %q: %w", loc, err)
	}
	if startID != "" {
		u = nav.WithID(u, startID)
	}
	return u.String(), nil
}

func runDeck(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	loc, err := startLocation(cfg)
	if err != nil {
		return err
	}
	history, err := nav.NewStack(loc)
	if err != nil {
		return err
	}

	client, err := record.NewClient(cfg.Server.BaseURL, cfg.Server.Timeout)
	if err != nil {
		return err
	}
	defer client.Close()

	var journal *service.JournalService
	if cfg.Journal.Enabled {
		db, err := openJournal(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		journal = &service.JournalService{Decisions: repository.NewDecisionRepo(db)}
	}

	log.Info("starting",
		zap.String("version", version),
		zap.String("server", cfg.Server.BaseURL),
		zap.String("location", loc),
		zap.Bool("journal", journal != nil))

	app := tui.New(ctx, cfg, tui.Deps{
		Fetcher: client,
		History: history,
		Journal: journal,
		Log:     log,
		Resolve: client.Resolve,
	})
	p := tea.NewProgram(app,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("stopped", zap.String("location", history.Location().String()))
	return nil
}

// openJournal migrates and opens the decision journal at path.
func openJournal(path string) (*sql.DB, error) {
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return db, nil
}
