package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-deck study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, service, err := openService(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		decks := service.Decks()
		if len(decks) == 0 {
			fmt.Println("No decks yet.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Deck", "Language", "Cards", "Due", "Studied Today"})

		var totalCards, totalDue, totalStudied int
		for _, d := range decks {
			t.AppendRow(table.Row{d.Name, d.Language, d.TotalCards, d.DueToday, d.StudiedToday})
			totalCards += d.TotalCards
			totalDue += d.DueToday
			totalStudied += d.StudiedToday
		}
		t.AppendFooter(table.Row{"Total", "", totalCards, totalDue, totalStudied})
		t.Render()
		return nil
	},
}
