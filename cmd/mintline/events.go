// Events command prints the persisted event journal.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the ledger event journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWorld()
		if err != nil {
			return err
		}
		defer w.close()

		records, err := w.store.Events()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(records)
		}
		if len(records) == 0 {
			fmt.Println("no events")
			return nil
		}
		for _, record := range records {
			fmt.Printf("%s  %-15s %s\n",
				record.At.Format("2006-01-02 15:04:05"), record.Type, record.Payload)
		}
		return nil
	},
}
