package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/LdDl/crdesc"
	"github.com/LdDl/crdesc/realizer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "crdesc",
		Short:        "crdesc - accessibility descriptions of street intersections",
		SilenceUsage: true,
	}
	cmd.AddCommand(describeCmd())
	cmd.AddCommand(languagesCmd())
	return cmd
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List languages descriptions can be generated in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, lang := range realizer.Languages() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func describeCmd() *cobra.Command {
	var (
		modelFileName  string
		outFileName    string
		configFileName string
		metricsFile    string
		format         string
		lang           string
		geomFormat     string
		verbose        bool
	)

	c := &cobra.Command{
		Use:   "describe",
		Short: "Describe intersection model and export the description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := crdesc.LoadConfiguration(configFileName)
			if err != nil {
				return err
			}
			// Flags win over configuration file and environment
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if cmd.Flags().Changed("lang") {
				cfg.Language = lang
			}
			if cmd.Flags().Changed("geomf") {
				cfg.GeometryFormat = geomFormat
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg.Verbose)

			st := time.Now()
			intersection, err := crdesc.LoadIntersectionFile(modelFileName)
			if err != nil {
				logger.Error("Can't load intersection", "file", modelFileName, "error", err)
				return err
			}
			logger.Info("Intersection loaded", "file", modelFileName, "branches", len(intersection.Branches), "elapsed", time.Since(st))

			var metrics *crdesc.Metrics
			if metricsFile != "" {
				metrics = crdesc.NewMetrics()
			}
			gen, err := crdesc.NewGenerator(
				crdesc.WithLanguage(cfg.GeneratorLanguage()),
				crdesc.WithLogger(logger),
				crdesc.WithMetrics(metrics),
			)
			if err != nil {
				return errors.Wrap(err, "Can't prepare generator")
			}

			st = time.Now()
			description, err := gen.Generate(intersection)
			if err != nil {
				return err
			}
			logger.Info("Description generated", "language", cfg.Language, "elapsed", time.Since(st))

			if outFileName == "" {
				err = export(cmd.OutOrStdout(), cfg, intersection, description)
			} else {
				err = exportFile(outFileName, cfg, intersection, description)
			}
			if err != nil {
				return err
			}

			if metrics != nil {
				if err := metrics.WriteToTextfile(metricsFile); err != nil {
					return errors.Wrap(err, "Can't write metrics")
				}
			}
			logger.Info("Done", "format", cfg.Format, "out", outFileName)
			return nil
		},
	}

	c.Flags().StringVarP(&modelFileName, "file", "f", "crossroad.json", "Filename of intersection model (JSON)")
	c.Flags().StringVarP(&outFileName, "out", "o", "", "Output filename (optional; stdout if omitted)")
	c.Flags().StringVar(&configFileName, "config", "", "YAML configuration file (optional)")
	c.Flags().StringVar(&metricsFile, "metrics", "", "Write Prometheus metrics in text format to the file (optional)")
	c.Flags().StringVar(&format, "format", crdesc.FORMAT_TEXT, "Output format. Expected values: text / json / geojson / csv")
	c.Flags().StringVar(&lang, "lang", string(realizer.English), fmt.Sprintf("Language of descriptions. Expected values: %s", languagesList()))
	c.Flags().StringVar(&geomFormat, "geomf", crdesc.GEOMETRY_WKT, "Format of CSV geometry. Expected values: wkt / geojson")
	c.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	return c
}

func exportFile(fileName string, cfg *crdesc.Configuration, intersection *crdesc.Intersection, description *crdesc.Description) error {
	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Can't create output file")
	}
	if err := export(file, cfg, intersection, description); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "Can't close output file")
	}
	return nil
}

func export(w io.Writer, cfg *crdesc.Configuration, intersection *crdesc.Intersection, description *crdesc.Description) error {
	switch cfg.Format {
	case crdesc.FORMAT_TEXT:
		_, err := fmt.Fprint(w, description.Text())
		return err
	case crdesc.FORMAT_JSON:
		return crdesc.ExportBindingJSON(w, intersection, description)
	case crdesc.FORMAT_GEOJSON:
		return crdesc.ExportGeoJSON(w, intersection, description)
	case crdesc.FORMAT_CSV:
		return crdesc.ExportCSV(w, intersection, description, cfg.GeometryFormat)
	}
	return errors.Errorf("Unsupported format '%s'", cfg.Format)
}

func languagesList() string {
	names := make([]string, 0, len(realizer.Languages()))
	for _, lang := range realizer.Languages() {
		names = append(names, string(lang))
	}
	return strings.Join(names, " / ")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
