package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amrw/vokab/internal/vocab"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks",
}

var deckAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, service, err := openService(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		language, _ := cmd.Flags().GetString("language")
		if language == "" {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			language = cfg.DefaultLanguage
		}
		description, _ := cmd.Flags().GetString("description")

		deck, err := service.AddDeck(cmd.Context(), vocab.AddDeckInput{
			Name:        args[0],
			Language:    language,
			Description: description,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created deck %q (%s)\n", deck.Name, deck.Language)
		return nil
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, service, err := openService(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		decks := service.Decks()
		if len(decks) == 0 {
			fmt.Println("No decks yet. Create one with: vokab deck add <name>")
			return nil
		}
		for _, d := range decks {
			fmt.Printf("%-30s %-12s %4d cards  %3d due\n", d.Name, d.Language, d.TotalCards, d.DueToday)
		}
		return nil
	},
}

func init() {
	deckAddCmd.Flags().String("language", "", "Language the deck teaches")
	deckAddCmd.Flags().String("description", "", "Short description")
	deckCmd.AddCommand(deckAddCmd)
	deckCmd.AddCommand(deckListCmd)
}

// findDeck resolves a deck by id or, failing that, by exact name.
func findDeck(service *vocab.Service, ref string) (*vocab.Deck, error) {
	if deck, ok := service.Deck(ref); ok {
		return deck, nil
	}
	for _, d := range service.Decks() {
		if strings.EqualFold(d.Name, ref) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no deck named %q: %w", ref, vocab.ErrDeckNotFound)
}
