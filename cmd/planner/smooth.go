package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/oceanic-robotics/gridplanner/costmap"
	"github.com/oceanic-robotics/gridplanner/internal/optimize"
	"github.com/oceanic-robotics/gridplanner/search"
	"github.com/oceanic-robotics/gridplanner/smoother"
)

func smoothCommand() *cli.Command {
	return &cli.Command{
		Name:      "smooth",
		Usage:     "plan then smooth the resulting path over the same scenario",
		ArgsUsage: "<scenario-file>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "start-x", Required: true},
			&cli.IntFlag{Name: "start-y", Required: true},
			&cli.IntFlag{Name: "goal-x", Required: true},
			&cli.IntFlag{Name: "goal-y", Required: true},
			&cli.StringFlag{Name: "connectivity", Value: "moore"},
			&cli.Float64Flag{Name: "smooth-weight", Value: 2.0},
			&cli.Float64Flag{Name: "curvature-weight", Value: 1.0},
			&cli.Float64Flag{Name: "costmap-weight", Value: 1.0},
			&cli.Float64Flag{Name: "distance-weight", Value: 1.0},
			&cli.Float64Flag{Name: "max-curvature", Value: 0.5},
			&cli.IntFlag{Name: "max-iterations", Value: optimize.DefaultMaxIterations},
		},
		Action: runSmooth,
	}
}

func runSmooth(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("smooth: expected exactly one scenario file argument")
	}
	logger := loggerFor(cmd, "smooth")

	f, err := os.Open(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("smooth: %w", err)
	}
	defer f.Close()

	grid, err := costmap.LoadText(f, logger)
	if err != nil {
		return err
	}

	connectivity, err := parseConnectivity(cmd.String("connectivity"))
	if err != nil {
		return err
	}

	table := search.NewTable(grid.SizeX(), grid.SizeY())
	discretePath, err := search.Run(ctx, grid, table,
		int(cmd.Int("start-x")), int(cmd.Int("start-y")),
		int(cmd.Int("goal-x")), int(cmd.Int("goal-y")),
		search.Options{Connectivity: connectivity, Logger: logger})
	if err != nil {
		return err
	}

	originalPath := search.Lift(discretePath, grid.SizeX())
	params := smoother.Params{
		SmoothWeight:    cmd.Float64("smooth-weight"),
		CurvatureWeight: cmd.Float64("curvature-weight"),
		CostmapWeight:   cmd.Float64("costmap-weight"),
		DistanceWeight:  cmd.Float64("distance-weight"),
		MaxCurvature:    cmd.Float64("max-curvature"),
	}
	costFn := smoother.New(originalPath, grid, params)

	initial := make([]float64, costFn.NumParameters())
	for i, p := range originalPath {
		initial[2*i], initial[2*i+1] = p.X, p.Y
	}

	result, err := optimize.GradientDescent(ctx, costFn, initial, optimize.Options{
		MaxIterations: int(cmd.Int("max-iterations")),
	})
	if err != nil {
		return err
	}
	logger.Info("smoothing finished", "iterations", result.Iterations, "converged", result.Converged, "cost", result.Cost)

	for i := 0; i < len(originalPath); i++ {
		fmt.Printf("%.4f %.4f\n", result.Parameters[2*i], result.Parameters[2*i+1])
	}
	return nil
}
