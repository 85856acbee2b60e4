package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tklehn/gomces/mcesapi"
	"github.com/tklehn/gomces/molfile"
)

var shrinkCmd = &cobra.Command{
	Use:   "shrink G1 G2 [G3 ...]",
	Short: "Print each graph's vertex/edge count before and after preprocess.Shrink",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runShrink,
}

func runShrink(cmd *cobra.Command, args []string) error {
	records := make([]molfile.Record, len(args))
	for i, path := range args {
		rec, err := loadRecord(path)
		if err != nil {
			return err
		}
		records[i] = rec
	}
	plain := graphsOf(records)
	anchorSeed := anchorFromFirstRecord(records)
	if len(anchorSeed) == 0 {
		return fmt.Errorf("gomces: shrink requires at least one anchor edge marked in %s", args[0])
	}

	dist, radius, err := mcesapi.AnchorReach(plain, anchorSeed)
	if err != nil {
		return err
	}

	shrunk, err := mcesapi.ShrinkGraphs(plain, radius, dist)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, g := range plain {
		fmt.Fprintf(out, "%s\t%d/%d\t%d/%d\n", args[i], g.VertexCount(), g.EdgeCount(),
			shrunk[i].VertexCount(), shrunk[i].EdgeCount())
	}
	return nil
}
