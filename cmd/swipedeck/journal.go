package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/swipedeck/internal/config"
	"github.com/jask/swipedeck/internal/database/repository"
	"github.com/jask/swipedeck/internal/record"
	"github.com/jask/swipedeck/internal/service"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recent decisions",
	Long: `Lists decisions recorded by the deck, newest first.

Decisions are only recorded while journal.enabled is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		db, err := openJournal(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := repository.NewDecisionRepo(db)
		svc := &service.JournalService{Decisions: repo}
		decisions, err := svc.Recent(cmd.Context(), journalLimit)
		if err != nil {
			return err
		}
		left, right, err := repo.Counts(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(decisions) == 0 {
			fmt.Fprintln(out, "no decisions recorded")
			return nil
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("WHEN", "ID", "NAME", "DECISION", "VIA")
		for _, d := range decisions {
			// rows written before sanitizing existed may still carry escapes
			t.Row(d.DecidedAt.Local().Format("2006-01-02 15:04"), record.Plain(d.RecordID), record.Plain(d.Name), verdict(d.Direction), d.Source)
		}
		fmt.Fprintln(out, t.String())
		fmt.Fprintf(out, "%d liked, %d passed\n", right, left)
		return nil
	},
}

var journalClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded decision",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		db, err := openJournal(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := (&service.MaintenanceService{DB: db}).Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "journal cleared")
		return nil
	},
}

func verdict(direction string) string {
	if direction == "right" {
		return "like"
	}
	return "nope"
}

func init() {
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "Number of decisions to show")
	journalCmd.AddCommand(journalClearCmd)
}
