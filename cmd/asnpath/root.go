package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/otabase/asnpath"
	"github.com/otabase/asnpath/internal/logging"
	"github.com/otabase/asnpath/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "asnpath",
	Short: "asnpath enumerates target-field paths in ASN.1-style message schemas",
	Long: `asnpath walks message type graphs (sequences, choices, repeated
containers, constrained strings) and emits every root-to-leaf path reaching
a target field kind, together with the choice decisions that select it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("schema", "s", "schema.yaml", "Path to the YAML schema document")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}

// newLogger builds the logger the commands share, honoring --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// loadProvider compiles the schema document named by --schema.
func loadProvider(cmd *cobra.Command) (ports.SchemaProvider, error) {
	schemaPath, _ := cmd.Flags().GetString("schema")
	provider, err := asnpath.LoadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %q: %w", schemaPath, err)
	}
	return provider, nil
}
