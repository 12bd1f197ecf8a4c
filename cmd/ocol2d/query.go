package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/akmonengine/ocol2d/internal/scene"
	"github.com/akmonengine/ocol2d/shape"
)

var (
	flagX float64
	flagY float64
)

var queryCmd = &cobra.Command{
	Use:   "query <scene.yaml>",
	Short: "List the bodies containing a point",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().Float64Var(&flagX, "x", 0, "Point x coordinate")
	queryCmd.Flags().Float64Var(&flagY, "y", 0, "Point y coordinate")
}

func runQuery(cmd *cobra.Command, args []string) error {
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	probe := shape.Point{Position: mgl64.Vec2{flagX, flagY}}
	bodies := s.World(flagWorkers).Query(probe)
	logger.Debug("query done", "point", probe.Position, "hits", len(bodies))

	out := cmd.OutOrStdout()
	if len(bodies) == 0 {
		fmt.Fprintln(out, "No body.")
		return nil
	}
	for _, body := range bodies {
		fmt.Fprintf(out, "%s\t%s\n", body.ID, body.Shape.Kind())
	}
	return nil
}
