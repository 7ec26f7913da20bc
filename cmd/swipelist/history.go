package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"swipelist/internal/history"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var (
		limit    int
		deckName string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the most recently displayed pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configService(opts, nil).Load()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			store, err := history.Open(cmd.Context(), cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), deckName, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	cmd.Flags().StringVar(&deckName, "deck", "", "only show entries for this deck file")
	return cmd
}

func renderHistory(entries []history.Entry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("TIME", "DECK", "PAGE", "OFFSET")
	for _, e := range entries {
		name := e.Deck
		if name == "" {
			name = "(placeholder)"
		}
		t.Row(
			e.At.Format("2006-01-02 15:04:05"),
			name,
			strconv.Itoa(e.Index+1),
			fmt.Sprintf("%+d", e.Offset),
		)
	}
	return t.String()
}
