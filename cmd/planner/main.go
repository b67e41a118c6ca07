// Command planner is the CLI driver binding the search and smoother
// cores together with the costmap.LoadText fixture format and the
// config package, replacing a raw stdin/stdout scenario protocol
// (a newState/dubins scanning loop) with a proper subcommand CLI
// built on urfave/cli/v3.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/oceanic-robotics/gridplanner/logging"
)

func main() {
	root := &cli.Command{
		Name:  "planner",
		Usage: "grid search and path smoothing over a text costmap scenario",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "enable debug-level logging"},
		},
		Commands: []*cli.Command{
			planCommand(),
			smoothCommand(),
			demoCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loggerFor(cmd *cli.Command, component string) logging.Logger {
	if cmd.Bool("verbose") {
		return logging.NewVerbose(component)
	}
	return logging.New(component)
}
