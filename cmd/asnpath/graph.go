package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otabase/asnpath/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <message>",
	Short: "Export a message type graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the message type graph, with choices, containers and embedded contents rendered as distinct shapes.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		provider, err := loadProvider(cmd)
		if err != nil {
			fmt.Printf("Error loading schema: %v\n", err)
			os.Exit(1)
		}

		root, err := provider.Resolve(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error resolving message: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(root))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
