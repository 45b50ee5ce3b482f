package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/otabase/asnpath"
	"github.com/otabase/asnpath/internal/presentation/report"
	"github.com/otabase/asnpath/pkg/adapters/jsonfile"
	"github.com/otabase/asnpath/pkg/adapters/redis"
	"github.com/otabase/asnpath/pkg/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Enumerate target-field paths",
	Long: `Walks the schema and prints every path from a message root to a field of
a target kind. Without --message, every declared message is extracted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExtract(cmd); err != nil {
			fmt.Printf("Extraction failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("message", "m", "", "Message type to extract (default: all)")
	extractCmd.Flags().StringSliceP("targets", "t", nil, "Target kinds: bit-string, octet-string, integer, sequence-of (default: all)")
	extractCmd.Flags().StringP("out", "o", "", "Write results to a JSON paths file")
	extractCmd.Flags().String("redis", "", "Also store results in Redis at this address")
	extractCmd.Flags().Int("budget", 0, "Abort after visiting this many nodes per message (0 = unlimited)")
}

func runExtract(cmd *cobra.Command) error {
	provider, err := loadProvider(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	opts := []asnpath.Option{asnpath.WithLogger(logger)}
	if budget, _ := cmd.Flags().GetInt("budget"); budget > 0 {
		opts = append(opts, asnpath.WithBudget(budget))
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		opts = append(opts, asnpath.WithSink(jsonfile.NewSink(out)))
	} else if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		opts = append(opts, asnpath.WithSink(redis.New(addr, "", 0)))
	}

	ex, err := asnpath.New(provider, opts...)
	if err != nil {
		return err
	}

	targets := extract.AllTargets()
	if names, _ := cmd.Flags().GetStringSlice("targets"); len(names) > 0 {
		targets, err = extract.ParseTargets(names)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if message, _ := cmd.Flags().GetString("message"); message != "" {
		paths, err := ex.Extract(ctx, message, targets)
		if err != nil {
			return err
		}
		return report.Write(os.Stdout, report.Build(message, targets.Strings(), paths))
	}

	results, err := ex.ExtractAll(ctx, targets)
	if err != nil {
		return err
	}
	order := make([]string, 0, len(results))
	for message := range results {
		order = append(order, message)
	}
	sort.Strings(order)
	return report.Write(os.Stdout, report.BuildAll(targets.Strings(), results, order))
}
