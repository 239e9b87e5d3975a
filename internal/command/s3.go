package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/younsl/awsls/internal/models"
	"github.com/younsl/awsls/pkg/aws"
	"github.com/younsl/awsls/pkg/formatter"
)

func newS3Cmd(app *App) *cobra.Command {
	opts := &S3Options{}

	cmd := &cobra.Command{
		Use:   "s3",
		Short: "List S3 buckets with their size",
		Long: `List S3 buckets with the total size of their objects.
Every object of every bucket is listed, which can take a while on large buckets.`,
		Example: `  awsls s3 -H -s
  awsls s3 -b my-bucket`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runS3(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Bucket, "bucket", "b", "", "only list this bucket")
	cmd.Flags().BoolVarP(&opts.HumanReadable, "human-readable", "H", false, "print sizes in human readable format (KiB, MiB, ...)")
	cmd.Flags().BoolVarP(&opts.SortBySize, "sort-by-size", "s", false, "sort buckets by size, largest first")

	return cmd
}

func (a *App) runS3(ctx context.Context, opts *S3Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	client, err := a.clients.S3(ctx)
	if err != nil {
		return err
	}
	lister := aws.NewS3Client(client, a.logger)

	names := []string{opts.Bucket}
	if opts.Bucket == "" {
		names, err = lister.GetBucketNames(ctx)
		if err != nil {
			return err
		}
	}

	p := a.startProgress("Analyzing S3 resources ...")
	defer p.Stop()

	buckets := make([]models.BucketInfo, 0, len(names))
	for i, name := range names {
		p.Update("Analyzing bucket %s (%d/%d) ...", name, i+1, len(names))

		bucket, err := lister.GetBucket(ctx, name)
		if err != nil {
			return err
		}
		buckets = append(buckets, bucket)
	}

	p.Done("✓ [%d buckets found] S3 resources analyzed - Completed in %.2f seconds\n",
		len(buckets), p.Elapsed().Seconds())

	if len(buckets) == 0 {
		fmt.Fprintln(a.Stdout, "Nothing found.")
		return nil
	}

	formatter.PrintBucketsTable(a.Stdout, buckets, formatter.BucketTableOptions{
		HumanReadable: opts.HumanReadable,
		SortBySize:    opts.SortBySize,
	})
	formatter.PrintBucketsSummary(a.Stdout, buckets)
	return nil
}
