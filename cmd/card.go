package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amrw/vokab/internal/vocab"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage cards",
}

var cardAddCmd = &cobra.Command{
	Use:   "add <deck> <front> <back>",
	Short: "Add a card to a deck",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, service, err := openService(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		deck, err := findDeck(service, args[0])
		if err != nil {
			return err
		}

		card, err := service.AddCard(cmd.Context(), vocab.AddCardInput{
			DeckID: deck.ID,
			Front:  args[1],
			Back:   args[2],
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %q — %q to %s\n", card.Front, card.Back, deck.Name)
		return nil
	},
}

func init() {
	cardCmd.AddCommand(cardAddCmd)
}
