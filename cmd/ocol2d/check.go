package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akmonengine/ocol2d/internal/scene"
)

var checkCmd = &cobra.Command{
	Use:   "check <scene.yaml>",
	Short: "List the colliding body pairs of a scene",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", "name", s.Name, "bodies", len(s.Bodies), "workers", flagWorkers)

	world := s.World(flagWorkers)
	start := time.Now()
	pairs := world.Detect()
	logger.Debug("detection done", "pairs", len(pairs), "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	if len(pairs) == 0 {
		fmt.Fprintln(out, "No collision.")
		return nil
	}

	for _, p := range pairs {
		fmt.Fprintf(out, "%s\t%s\t%s - %s\n", p.BodyA.ID, p.BodyB.ID, p.BodyA.Shape.Kind(), p.BodyB.Shape.Kind())
	}
	return nil
}
