/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/slicingmelon/urisplice/core/cli"
	"github.com/slicingmelon/urisplice/core/utils/logger"
)

func main() {
	runner := cli.NewRunner()
	if err := runner.Initialize(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.Error().Msgf("Initialization failed: %v", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runner.RunContext(ctx); err != nil {
		logger.Error().Msgf("Execution failed: %v", err)
		stop()
		os.Exit(1)
	}
}
