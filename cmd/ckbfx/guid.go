package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var guidCmd = &cobra.Command{
	Use:   "guid",
	Short: "Generate a GUID for a new effect manifest",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "{%s}\n", uuid.New())
	},
}

func init() {
	rootCmd.AddCommand(guidCmd)
}
