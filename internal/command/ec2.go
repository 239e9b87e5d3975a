package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/younsl/awsls/internal/models"
	"github.com/younsl/awsls/pkg/aws"
	"github.com/younsl/awsls/pkg/formatter"
	"github.com/younsl/awsls/pkg/utils"
)

func newEC2Cmd(app *App) *cobra.Command {
	opts := &EC2Options{}

	cmd := &cobra.Command{
		Use:   "ec2",
		Short: "List EC2 instances",
		Long: `List EC2 instances with their type, cores, memory, region and state.
All regions available to the account are searched unless --region is set.`,
		Example: `  awsls ec2
  awsls ec2 -s running -s stopped
  awsls ec2 -r eu-west-1 -o instances.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runEC2(cmd.Context(), opts)
		},
	}

	defaultStates := make([]string, 0, len(models.AllInstanceStates))
	for _, state := range models.AllInstanceStates {
		defaultStates = append(defaultStates, string(state))
	}

	cmd.Flags().StringSliceVarP(&opts.States, "state", "s", defaultStates,
		"instance states to list: running, stopped or terminated (repeatable)")
	cmd.Flags().StringVarP(&opts.Region, "region", "r", "",
		"region to search (default: all regions)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "",
		"write the instances to a "+formatter.CSVExtension+" file instead of stdout")

	return cmd
}

func (a *App) runEC2(ctx context.Context, opts *EC2Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	states, err := parseStates(opts.States)
	if err != nil {
		return err
	}

	regions, err := a.ec2Regions(ctx, opts.Region)
	if err != nil {
		return err
	}
	a.logger.Debug("searching instances", slog.Int("regions", len(regions)), slog.Any("states", states))

	p := a.startProgress("Analyzing EC2 resources ...")
	defer p.Stop()

	var instances []models.InstanceInfo
	for i, region := range regions {
		p.Update("Analyzing EC2 resources in %s (%d/%d) ...", region, i+1, len(regions))

		client, err := a.clients.EC2(ctx, region)
		if err != nil {
			return err
		}
		found, err := aws.NewEC2Client(client, region, a.logger).GetInstances(ctx, states)
		if err != nil {
			return err
		}
		instances = append(instances, found...)
	}

	p.Done("✓ [%d instances found] EC2 resources analyzed - Completed in %.2f seconds\n",
		len(instances), p.Elapsed().Seconds())

	if len(instances) == 0 {
		fmt.Fprintln(a.Stdout, "Nothing found.")
		return nil
	}

	if opts.Output != "" {
		return a.writeInstancesCSV(opts.Output, instances)
	}

	formatter.PrintInstancesTable(a.Stdout, instances, a.color())
	formatter.PrintInstancesSummary(a.Stdout, instances)
	return nil
}

// ec2Regions returns the region given on the command line, or every region
// enabled for the account
func (a *App) ec2Regions(ctx context.Context, region string) ([]string, error) {
	if region != "" {
		if !utils.IsKnownRegion(region) {
			a.logger.Warn("region is not in the list of known regions", slog.String("region", region))
		}
		return []string{region}, nil
	}

	client, err := a.clients.EC2(ctx, utils.GetDiscoveryRegion())
	if err != nil {
		return nil, err
	}
	return aws.GetRegions(ctx, client)
}

func (a *App) writeInstancesCSV(path string, instances []models.InstanceInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	if err := formatter.WriteInstancesCSV(f, instances); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	a.logger.Info("instances written", slog.String("path", path), slog.Int("count", len(instances)))
	return nil
}

// parseStates converts state names, dropping duplicates
func parseStates(names []string) ([]models.InstanceState, error) {
	states := make([]models.InstanceState, 0, len(names))
	seen := make(map[models.InstanceState]bool, len(names))
	for _, name := range names {
		state, err := models.ParseInstanceState(name)
		if err != nil {
			return nil, &ValidationError{Problems: []string{err.Error()}}
		}
		if seen[state] {
			continue
		}
		seen[state] = true
		states = append(states, state)
	}
	return states, nil
}
