package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/oceanic-robotics/gridplanner/costmap"
	"github.com/oceanic-robotics/gridplanner/search"
)

// demoCommand exercises a disjoint-episode concurrency model: multiple
// planning episodes running in parallel, each with its own node table
// and neighborhood, sharing nothing but a read-only costmap view. No
// planner in the retrieved pack ran episodes in parallel; this is
// grounded instead in errgroup.WithContext's fan-out/fan-in idiom.
func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "run several independent planning episodes concurrently over a shared FREE grid",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "episodes", Value: 4},
			&cli.IntFlag{Name: "grid-size", Value: 64},
		},
		Action: runDemo,
	}
}

type episodeResult struct {
	id      string
	pathLen int
}

func runDemo(ctx context.Context, cmd *cli.Command) error {
	logger := loggerFor(cmd, "demo")
	size := int(cmd.Int("grid-size"))
	episodes := int(cmd.Int("episodes"))
	if episodes < 1 {
		return fmt.Errorf("demo: episodes must be >= 1")
	}

	grid := costmap.NewGrid(size, size)

	group, groupCtx := errgroup.WithContext(ctx)
	results := make([]episodeResult, episodes)

	for i := 0; i < episodes; i++ {
		i := i
		group.Go(func() error {
			episodeID := uuid.New().String()
			table := search.NewTable(grid.SizeX(), grid.SizeY())

			startY := i % size
			goalY := (size - 1) - (i % size)
			path, err := search.Run(groupCtx, grid, table, 0, startY, size-1, goalY, search.Options{
				Connectivity: search.Moore,
				Logger:       logger,
			})
			if err != nil {
				return fmt.Errorf("episode %s: %w", episodeID, err)
			}

			results[i] = episodeResult{id: episodeID, pathLen: len(path)}
			logger.Debug("episode finished", "episode", episodeID, "path_len", len(path))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s: path length %d\n", r.id, r.pathLen)
	}
	return nil
}
