// Package cli is the interactive surface of the newsagent back office.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "newsagent",
	Short: "Back-office tool for a newspaper delivery business",
	Long: `Manages customers, delivery areas, publications, subscription orders,
delivery dockets, invoices and warning letters against the shared database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
