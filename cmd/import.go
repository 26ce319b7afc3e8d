package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/amrw/vokab/internal/vocab"
)

var importCmd = &cobra.Command{
	Use:   "import <deck> <file.csv>",
	Short: "Bulk-import cards from a CSV file",
	Long: `Import cards from a CSV file with one "front,back" pair per line.
Rows with a missing front or back are skipped, not errors.`,
	Args: cobra.ExactArgs(2),
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

		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		defer func() { _ = f.Close() }()

		rows, skipped, err := readRows(f)
		if err != nil {
			return err
		}

		added, err := service.BulkImport(cmd.Context(), deck.ID, rows)
		if err != nil {
			return err
		}

		// Rows the reader dropped plus rows the service rejected.
		skipped += len(rows) - added
		fmt.Printf("Imported %d card(s) into %s", added, deck.Name)
		if skipped > 0 {
			fmt.Printf(", skipped %d malformed row(s)", skipped)
		}
		fmt.Println()
		return nil
	},
}

// readRows parses CSV input into import rows. Rows with the wrong field
// count are skipped rather than failing the whole file.
func readRows(r io.Reader) ([]vocab.ImportRow, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []vocab.ImportRow
	skipped := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read csv: %w", err)
		}
		if len(record) < 2 {
			skipped++
			continue
		}
		rows = append(rows, vocab.ImportRow{Front: record[0], Back: record[1]})
	}
	return rows, skipped, nil
}
