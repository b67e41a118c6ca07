package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/oceanic-robotics/gridplanner/costmap"
	"github.com/oceanic-robotics/gridplanner/search"
)

func planCommand() *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "run A* search over a text costmap scenario",
		ArgsUsage: "<scenario-file>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "start-x", Required: true},
			&cli.IntFlag{Name: "start-y", Required: true},
			&cli.IntFlag{Name: "goal-x", Required: true},
			&cli.IntFlag{Name: "goal-y", Required: true},
			&cli.StringFlag{Name: "connectivity", Value: "moore", Usage: "von_neumann or moore"},
			&cli.BoolFlag{Name: "traverse-unknown"},
			&cli.IntFlag{Name: "iteration-cap"},
		},
		Action: runPlan,
	}
}

func runPlan(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("plan: expected exactly one scenario file argument")
	}
	logger := loggerFor(cmd, "plan")

	f, err := os.Open(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("plan: %w", err)
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
	opts := search.Options{
		Connectivity:    connectivity,
		TraverseUnknown: cmd.Bool("traverse-unknown"),
		IterationCap:    int(cmd.Int("iteration-cap")),
		Logger:          logger,
	}

	path, err := search.Run(ctx, grid, table,
		int(cmd.Int("start-x")), int(cmd.Int("start-y")),
		int(cmd.Int("goal-x")), int(cmd.Int("goal-y")),
		opts)
	if err != nil {
		return err
	}

	for _, p := range search.Lift(path, grid.SizeX()) {
		fmt.Printf("%.0f %.0f\n", p.X, p.Y)
	}
	return nil
}

func parseConnectivity(name string) (search.Connectivity, error) {
	switch name {
	case "von_neumann":
		return search.VonNeumann, nil
	case "moore":
		return search.Moore, nil
	default:
		return 0, fmt.Errorf("plan: unknown connectivity %q", name)
	}
}
