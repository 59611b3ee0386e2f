package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/persistorai/pipelinecheck/client"
	"github.com/persistorai/pipelinecheck/internal/service"
)

func finish(cmd *cobra.Command, v verdict, failOnCycle bool) error {
	if err := outputVerdict(cmd.OutOrStdout(), v); err != nil {
		return err
	}
	if failOnCycle && !v.IsDAG {
		return errCyclic
	}
	return nil
}

func newParseCmd() *cobra.Command {
	var failOnCycle bool
	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Submit a pipeline to the server for DAG validation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lp, err := loadPipeline(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := apiClient.Pipelines.Parse(cmd.Context(), &client.Pipeline{Raw: lp.body})
			if err != nil {
				return err
			}
			return finish(cmd, verdict(*res), failOnCycle)
		},
	}
	cmd.Flags().BoolVar(&failOnCycle, "fail-on-cycle", false, "Exit with status 2 if the pipeline has a cycle")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var (
		failOnCycle bool
		verbose     bool
		maxElements int
	)
	cmd := &cobra.Command{
		Use:   "check <file|->",
		Short: "Check a pipeline locally without contacting a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lp, err := loadPipeline(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			log := logrus.New()
			log.SetOutput(os.Stderr)
			log.SetLevel(logrus.WarnLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			res, err := service.NewPipelineService(log, maxElements).Parse(cmd.Context(), &lp.req)
			if err != nil {
				return err
			}
			return finish(cmd, verdict(*res), failOnCycle)
		},
	}
	cmd.Flags().BoolVar(&failOnCycle, "fail-on-cycle", false, "Exit with status 2 if the pipeline has a cycle")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log graph statistics to stderr")
	cmd.Flags().IntVar(&maxElements, "max-elements", 0, "Reject pipelines with more nodes plus edges (0 = unlimited)")
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.Ping(cmd.Context()); err != nil {
				return err
			}
			h, err := apiClient.Health(cmd.Context())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), h)
		},
	}
}
