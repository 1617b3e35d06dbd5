package cmd

import (
	"github.com/rskv-p/radix/cmd/cmd_radix"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Radix-indexed key/value store",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func init() {
	rootCmd.AddCommand(cmd_radix.RootCmd)
}
