package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otabase/asnpath/pkg/schema"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [message]",
	Short: "Show the structural outline of message types",
	Long:  `Prints an indented outline of a message type graph: field names, kinds, size constraints and embedded contents. Without arguments, outlines every declared message.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(cmd, args); err != nil {
			fmt.Printf("Inspect failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	provider, err := loadProvider(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	messages := args
	if len(messages) == 0 {
		messages, err = provider.Messages(ctx)
		if err != nil {
			return err
		}
	}

	for i, message := range messages {
		root, err := provider.Resolve(ctx, message)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(schema.Outline(root))
	}
	return nil
}
