package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otabase/asnpath"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of asnpath",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("asnpath version %s\n", strings.TrimSpace(asnpath.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
