package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"podscrape/internal/app/ports"
	"podscrape/internal/app/scrape"
	"podscrape/internal/infra/adapters/asker"
	"podscrape/internal/infra/adapters/audiometa"
	"podscrape/internal/infra/adapters/configurator"
	"podscrape/internal/infra/adapters/fetcher"
	"podscrape/internal/infra/adapters/logger"
	"podscrape/internal/infra/adapters/publisher"
	"podscrape/internal/infra/adapters/youtube"
)

func main() {
	specFlag := &cli.StringFlag{
		Name:    "spec",
		Aliases: []string{"s"},
		Value:   "podscrape.yaml",
		Usage:   "Main configuration file for the scrape run",
	}
	timeoutFlag := &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Per-request timeout, e.g. 10s (overrides the spec file)",
	}

	app := &cli.App{
		Name:  "podscrape",
		Usage: "Scrape the Lex Fridman podcast listing and the YouTube Data API into a CSV of episode metadata.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Also log debug records",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "scrape",
				Usage:  "Run one full scrape pass and write the CSV",
				Action: runScrape,
				Flags: []cli.Flag{
					specFlag,
					timeoutFlag,
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "CSV file to write (overrides the spec file)",
					},
					&cli.BoolFlag{
						Name:    "upload",
						Aliases: []string{"u"},
						Usage:   "Upload the CSV to the S3 bucket defined in the spec file",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Force, do not ask if to proceed with an action, just do it",
					},
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Usage:   "Write the CSV to stdout without modifying or uploading anything",
					},
				},
			},
			{
				Name:      "locate",
				Usage:     "Run the audio locator chain for one thumbnail/page pair and print the resulting URL",
				ArgsUsage: "<thumbnail-url> <episode-page-url>",
				Action:    runLocate,
				Flags:     []cli.Flag{specFlag, timeoutFlag},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.DefaultLogger().Error("Run failed", "cause", err)
		os.Exit(1)
	}
}

func newContext(c *cli.Context) context.Context {
	if c.Bool("verbose") {
		return logger.WithLogger(context.Background(), logger.VerboseLogger())
	}
	return logger.WithDefaultLogger(context.Background())
}

func runScrape(c *cli.Context) error {
	ctx := newContext(c)
	l := logger.FromContext(ctx)

	spec, err := configurator.New(c.String("spec")).Load(ctx)
	if err != nil {
		return err
	}
	if c.IsSet("output") {
		spec.Output = c.String("output")
	}
	if c.IsSet("timeout") {
		spec.Timeout.Duration = c.Duration("timeout")
	}

	ask := asker.New(c.Bool("dry-run"), c.Bool("force"))
	collector := scrape.NewCollector(spec,
		fetcher.New(spec.Timeout.Duration),
		youtube.New(spec.APIKey, spec.Timeout.Duration),
		audiometa.New())

	records, err := collector.Run(ctx)
	if err != nil {
		return err
	}
	l.Info("Collected episode records", "records", len(records))

	if c.Bool("dry-run") {
		return scrape.WriteCSV(os.Stdout, records)
	}

	if _, err := os.Stat(spec.Output); err == nil {
		if !ask.Ask(ctx, "Overwrite %s?", spec.Output) {
			l.Warn("Leaving existing output untouched", "output", spec.Output)
			return nil
		}
	}
	f, err := os.Create(spec.Output)
	if err != nil {
		return err
	}
	if err := scrape.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	l.Info("Wrote CSV", "output", spec.Output)

	if c.Bool("upload") {
		if spec.Aws.Bucket == "" {
			return fmt.Errorf("aws.bucket must be set in %s to upload", c.String("spec"))
		}
		pub := publisher.New(spec.Aws)
		if err := pub.Diff(ctx, spec.Aws.Bucket, spec.Output, spec.Output); err != nil {
			return err
		}
		if ask.Ask(ctx, "Upload %s to s3://%s?", spec.Output, spec.Aws.Bucket) {
			return pub.Publish(ctx, &ports.ForPublishingRequest{
				Bucket:       spec.Aws.Bucket,
				From:         spec.Output,
				StorageClass: spec.Aws.StorageClass,
			})
		}
	}
	return nil
}

func runLocate(c *cli.Context) error {
	ctx := newContext(c)
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <thumbnail-url> <episode-page-url> as arguments")
	}
	spec, err := configurator.New(c.String("spec")).Load(ctx)
	if err != nil {
		return err
	}
	if c.IsSet("timeout") {
		spec.Timeout.Duration = c.Duration("timeout")
	}
	collector := scrape.NewCollector(spec, fetcher.New(spec.Timeout.Duration), nil, nil)
	audioURL := collector.LocateAudio(ctx, c.Args().Get(0), c.Args().Get(1))
	if audioURL == "" {
		return fmt.Errorf("no live audio asset found")
	}
	fmt.Println(audioURL)
	return nil
}
