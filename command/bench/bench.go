package bench

import (
	"fmt"

	"github.com/0xPolygon/rsa-verifier/command"
	"github.com/0xPolygon/rsa-verifier/command/helper"
	"github.com/0xPolygon/rsa-verifier/verifier"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	params = &benchParams{}
)

// GetCommand returns the bench command
func GetCommand() *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Compares the cost of every fixture verification across the exponentiation backends",
		Run:   runCommand,
	}

	setFlags(benchCmd)

	return benchCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.fixturesPath,
		fixturesFlag,
		"",
		"the path to the fixtures file (.json, .hcl, .yaml or .yml)",
	)

	cmd.Flags().StringVar(
		&params.metricsFile,
		metricsFileFlag,
		"",
		"if set, the Prometheus metrics of the run are written to this file",
	)

	params.verifierFlags.Register(cmd)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	result, err := runBench(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(result)
}

func runBench(cmd *cobra.Command) (*BenchResult, error) {
	config, err := params.verifierFlags.Config(cmd)
	if err != nil {
		return nil, err
	}

	fixturesPath, err := params.resolveFixtures(config.Fixtures)
	if err != nil {
		return nil, err
	}

	fixtures, err := verifier.ReadFixtureFile(fixturesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}

	requests := make([]*verifier.Request, len(fixtures))

	for i, f := range fixtures {
		if requests[i], err = f.ToRequest(); err != nil {
			return nil, err
		}
	}

	var telemetry *verifier.Telemetry

	if params.metricsFile != "" {
		if telemetry, err = verifier.SetupTelemetry(); err != nil {
			return nil, fmt.Errorf("failed to set up telemetry: %w", err)
		}
	}

	runID := uuid.New().String()
	logger := helper.NewLogger(cmd, config.LogLevel).With("run", runID)

	service, err := verifier.NewService(config, logger)
	if err != nil {
		return nil, err
	}

	compared, err := service.BatchCompare(cmd.Context(), requests)
	if err != nil {
		return nil, fmt.Errorf("bench command failed. error: %w", err)
	}

	results := make([]*FixtureResult, len(fixtures))

	for i, responses := range compared {
		results[i] = &FixtureResult{
			Name:      fixtures[i].Name,
			Responses: responses,
		}
	}

	logger.Info("benchmark finished", "fixtures", len(fixtures))

	result := newBenchResult(runID, config.Fork, results)

	if telemetry != nil {
		if err := telemetry.WriteTextfile(params.metricsFile); err != nil {
			return nil, fmt.Errorf("failed to write metrics file: %w", err)
		}

		result.MetricsFile = params.metricsFile
	}

	return result, nil
}
