// Version command for the mintline CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/mintline"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mintline version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mintline", mintline.Version)
	},
}
