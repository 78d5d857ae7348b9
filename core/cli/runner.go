/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/slicingmelon/urisplice/core/engine/splice"
	"github.com/slicingmelon/urisplice/core/utils/logger"
)

const URISPLICE_VERSION = "0.1.0"

type Runner struct {
	RunnerOptions *CliOptions
	URIs          []string
	Processor     *splice.Processor
	Out           io.Writer
}

func NewRunner() *Runner {
	return &Runner{Out: os.Stdout}
}

func (r *Runner) Initialize() error {
	return r.InitializeWithArgs(os.Args[1:])
}

func (r *Runner) InitializeWithArgs(args []string) error {
	// Step 1: Parse CLI flags
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	r.RunnerOptions = opts

	if opts.Verbose {
		logger.DefaultLogger.EnableVerbose()
	}
	if opts.Debug {
		logger.DefaultLogger.EnableDebug()
	}
	logger.Verbose().Msgf("Initializing URISplice v%s...", URISPLICE_VERSION)

	// Step 2: Collect input URIs
	uris, err := NewURIInput(opts).CollectURIs()
	if err != nil {
		return fmt.Errorf("failed to collect URIs: %w", err)
	}
	r.URIs = uris

	// Step 3: Initialize the processor
	r.Processor = splice.NewProcessor(&splice.ProcessorOptions{
		Workers: opts.Workers,
		Plan:    opts.Plan,
		Inspect: opts.Inspect,
	})

	return nil
}

func (r *Runner) Run() error {
	return r.RunContext(context.Background())
}

// RunContext processes every URI and prints the reports. It fails when at
// least one URI failed.
func (r *Runner) RunContext(ctx context.Context) error {
	defer r.Processor.Close()

	opts := r.RunnerOptions

	if opts.PrintToken {
		token, err := splice.EncodePlanToken(opts.Plan)
		if err != nil {
			return fmt.Errorf("failed to encode plan token: %w", err)
		}
		logger.Info().PlanToken(token).Msgf("Plan token (replay with -t)")
		fmt.Fprintln(r.Out, token)
	}

	logger.Verbose().Msgf("Processing %d URIs with %d workers", len(r.URIs), opts.Workers)
	results := splice.Collect(r.Processor.Process(ctx, r.URIs))

	if opts.Inspect {
		for _, res := range results {
			logger.PrintURIHeader(res.Index+1, res.Input)
			table, err := splice.RenderInspection(res.Inspection)
			if err != nil {
				return err
			}
			fmt.Fprintln(r.Out, table)
		}
	}

	if opts.Plan != nil {
		if opts.Inspect || logger.IsVerboseEnabled() {
			table, err := splice.RenderResults(results)
			if err != nil {
				return err
			}
			fmt.Fprintln(r.Out, table)
		} else {
			for _, res := range results {
				if res.Err == nil {
					fmt.Fprintln(r.Out, res.Output)
				}
			}
		}

		if opts.Output != "" {
			if err := writeOutputs(opts.Output, results); err != nil {
				return err
			}
			logger.Success().Msgf("Output saved to %s", opts.Output)
		}
	}

	stats := r.Processor.Stats()
	if stats.Total() == 0 {
		return nil
	}

	for _, res := range results {
		if res.Err != nil {
			logger.Error().Component(splice.KindName(splice.KindOf(res.Err))).Msgf("%v", res.Err)
		}
	}

	table, err := splice.RenderErrorStats(stats)
	if err != nil {
		return err
	}
	logger.Warning().Msgf("Error stats")
	fmt.Fprintln(r.Out, table)

	return fmt.Errorf("%d of %d URIs failed", stats.Total(), len(results))
}

func writeOutputs(path string, results []*splice.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, res := range results {
		if res.Err == nil {
			fmt.Fprintln(w, res.Output)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %v", err)
	}
	return nil
}
