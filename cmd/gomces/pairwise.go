package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tklehn/gomces/mcesapi"
)

var pairwiseCmd = &cobra.Command{
	Use:   "pairwise G H",
	Short: "Run the McGregor pairwise search between two molecule files",
	Args:  cobra.ExactArgs(2),
	RunE:  runPairwise,
}

func init() {
	pairwiseCmd.Flags().String("anchor", "", "vertex-correspondence seed file, one \"<g_vertex> <h_vertex>\" pair per line (optional)")
}

func runPairwise(cmd *cobra.Command, args []string) error {
	logger, runID := newLogger()
	defer logger.Sync()

	anchorPath, _ := cmd.Flags().GetString("anchor")

	if watchDir := viper.GetString("watch"); watchDir != "" {
		gPath := args[0]
		return watchAndRerun(watchDir, logger, func(triggerPath string) error {
			return runPairwiseOnce(cmd.OutOrStdout(), gPath, triggerPath, anchorPath, logger, runID)
		})
	}

	return runPairwiseOnce(cmd.OutOrStdout(), args[0], args[1], anchorPath, logger, runID)
}

func runPairwiseOnce(out io.Writer, gPath, hPath, anchorPath string, logger *zap.Logger, runID string) error {
	gRecord, err := loadRecord(gPath)
	if err != nil {
		return err
	}
	hRecord, err := loadRecord(hPath)
	if err != nil {
		return err
	}

	var anchor []mcesapi.NodePair
	if anchorPath != "" {
		anchor, err = loadAnchorPairs(anchorPath)
		if err != nil {
			return err
		}
	}

	molecule := viper.GetBool("molecule")
	logger.Debug("pairwise starting",
		zap.String("run_id", runID),
		zap.Int("g_vertices", gRecord.Graph.VertexCount()),
		zap.Int("h_vertices", hRecord.Graph.VertexCount()),
		zap.Int("anchor_pairs", len(anchor)),
	)

	start := time.Now()
	solutions, err := mcesapi.PairwiseMCES(gRecord.Graph, hRecord.Graph, anchor, molecule)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	logger.Info("pairwise finished",
		zap.String("run_id", runID),
		zap.Duration("elapsed", elapsed),
		zap.Int("solution_count", len(solutions)),
	)

	best := 0
	var mapping map[int]int
	if len(solutions) > 0 {
		best = solutions[0].ArcsLeft
		mapping = solutions[0].Mapping
	}

	if viper.GetString("format") == "json" {
		result := mcesapi.Result{
			RunID:    runID,
			ArcsLeft: best,
			Elapsed:  elapsed,
			Solution: nodeMappingsOf(mapping),
		}
		data, err := result.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = out.Write(append(data, '\n'))
		return err
	}

	fmt.Fprintf(out, "%d/%d\t%d/%d\t%.6f\n",
		gRecord.Graph.VertexCount(), gRecord.Graph.EdgeCount(),
		hRecord.Graph.VertexCount(), hRecord.Graph.EdgeCount(),
		elapsed.Seconds())
	return nil
}

func nodeMappingsOf(mapping map[int]int) []mcesapi.NodeMapping {
	out := make([]mcesapi.NodeMapping, 0, len(mapping))
	for g, h := range mapping {
		out = append(out, mcesapi.NodeMapping{G: g, H: h})
	}
	return out
}
