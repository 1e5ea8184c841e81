package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/listenupapp/catalog-export/internal/config"
	"github.com/listenupapp/catalog-export/internal/di"
	"github.com/listenupapp/catalog-export/internal/di/providers"
	"github.com/listenupapp/catalog-export/internal/domain"
	"github.com/listenupapp/catalog-export/internal/export"
	"github.com/listenupapp/catalog-export/internal/logger"
)

func newRootCmd() *cobra.Command {
	var flags config.Flags

	root := &cobra.Command{
		Use:   "catalog-export",
		Short: "Export the Gutenberg catalog cache as relational CSV files",
		Long: `Reads the Gutenberg metadata cache (an SQLite file) and writes one CSV
file per table, plus synthetic series inferred from titles and subjects.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.Bind(root.PersistentFlags())

	root.AddCommand(
		newExportCmd(&flags),
		newSeriesCmd(&flags),
		newInspectCmd(&flags),
	)
	return root
}

func newExportCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "export [table...]",
		Short: "Export every profile table, or only the named ones",
		Example: `  catalog-export export --cache-path ~/gutenberg/gutenbergindex.db --out ./csv
  catalog-export export books authors --archive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := make([]domain.Table, len(args))
			for i, arg := range args {
				tables[i] = domain.Table(arg)
			}
			return runExport(cmd, *flags, tables)
		},
	}
}

func newSeriesCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "Export only series.csv and series_books.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, *flags, []domain.Table{domain.TableSeries})
		},
	}
}

func newInspectCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the row count of every cache table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.ErrOrStderr(), *flags, func(i do.Injector) error {
				handle, err := do.Invoke[*providers.CatalogHandle](i)
				if err != nil {
					return err
				}

				counts, err := handle.TableCounts(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Cache: %s\n\n", handle.Path())

				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "TABLE\tROWS\n")
				for _, c := range counts {
					fmt.Fprintf(tw, "%s\t%d\n", c.Table, c.Rows)
				}
				return tw.Flush()
			})
		},
	}
}

func runExport(cmd *cobra.Command, flags config.Flags, tables []domain.Table) error {
	return withContainer(cmd.ErrOrStderr(), flags, func(i do.Injector) error {
		cfg, err := do.Invoke[*config.Config](i)
		if err != nil {
			return err
		}
		log, err := do.Invoke[*logger.Logger](i)
		if err != nil {
			return err
		}

		exporter, err := do.Invoke[*export.Exporter](i)
		if err != nil {
			return err
		}

		result, err := exporter.Export(cmd.Context(), export.Options{
			Tables:    tables,
			Archive:   cfg.Output.Archive,
			OutputDir: cfg.Output.Dir,
			CachePath: cfg.Catalog.CachePath,
		})
		if err != nil {
			log.WithError(err).WithField("output_dir", cfg.Output.Dir).Error("Export failed")
			return err
		}

		return printResult(cmd.OutOrStdout(), result)
	})
}

// withContainer runs fn against a fresh container and shuts it down afterwards.
// Shutdown failures are reported on errOut.
func withContainer(errOut io.Writer, flags config.Flags, fn func(do.Injector) error) error {
	injector := di.NewContainer(flags)
	defer func() {
		if report := injector.Shutdown(); report != nil && !report.Succeed {
			fmt.Fprintf(errOut, "catalog-export: shutdown: %v\n", report)
		}
	}()
	return fn(injector)
}

func printResult(w io.Writer, result *export.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "FILE\tTABLE\tROWS\tSHA256\n")
	for _, f := range result.Files {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", f.Name, f.Table, f.Rows, f.Checksum)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s: %d files, %d rows written to %s in %s\n",
		result.RunID, len(result.Files), result.Rows(), result.OutputPath, result.Duration.Round(time.Millisecond))
	return err
}
