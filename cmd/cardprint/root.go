package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardprint/internal/config"
	"github.com/kpauljoseph/cardprint/pkg/logger"
	"github.com/kpauljoseph/cardprint/pkg/models"
	"github.com/kpauljoseph/cardprint/pkg/version"
)

type rootOptions struct {
	configPath string
	verbose    bool
	debug      bool
}

// printFlags are the per-run overrides of the config file.
type printFlags struct {
	rows          int
	columns       int
	fontSize      float64
	orientation   string
	noBorders     bool
	paper         string
	termSeparator string
	cardSeparator string
}

type settings struct {
	cfg     *config.Config
	export  models.ExportSettings
	options models.PrintOptions
	paper   string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cardprint",
		Short: "Print flashcard sets as double-sided card sheets",
		Long: `CardPrint turns an exported flashcard set (one card per line, term and
definition separated by a tab) into printable sheets. Every front sheet is
followed by a mirrored back sheet, so printing double-sided and flipping
along the long edge puts each definition behind its term.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetVerbose(opts.verbose)
			if opts.debug {
				log.SetLevel(logger.LevelTrace)
			}
			if opts.verbose {
				log.Debug("Verbose logging enabled")
			}
		},
	}

	cmd.SetVersionTemplate(version.GetVersionInfo() + "\n")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to config file")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable verbose logging")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug mode with trace logging")

	cmd.AddCommand(
		newRenderCmd(opts, log),
		newPreviewCmd(opts, log),
		newWatchCmd(opts, log),
		newBatchCmd(opts, log),
		newInspectCmd(log),
		newRasterizeCmd(log),
		newVersionCmd(),
	)

	return cmd
}

func addPrintFlags(cmd *cobra.Command, f *printFlags) {
	defaults := models.DefaultPrintOptions()
	cmd.Flags().IntVar(&f.rows, "rows", defaults.Rows, "card rows per page")
	cmd.Flags().IntVar(&f.columns, "columns", defaults.Columns, "card columns per page")
	cmd.Flags().Float64Var(&f.fontSize, "font-size", defaults.FontSize, "font size in px")
	cmd.Flags().StringVar(&f.orientation, "orientation", string(defaults.Orientation), "portrait or landscape")
	cmd.Flags().BoolVar(&f.noBorders, "no-borders", false, "hide cell borders and print edge to edge")
	cmd.Flags().StringVar(&f.paper, "paper", "Letter", "paper size: A3, A4, A5, Letter, Legal or Tabloid")
	cmd.Flags().StringVar(&f.termSeparator, "term-separator", "\t", "separator between term and definition")
	cmd.Flags().StringVar(&f.cardSeparator, "card-separator", "\n", "separator between cards")
}

// resolveSettings loads the config file and applies any flags the user set.
// Grid dimensions are not re-validated here; the layout generator owns that.
func resolveSettings(cmd *cobra.Command, root *rootOptions, f *printFlags, log *logger.Logger) (*settings, error) {
	cfg, err := config.LoadOrDefault(root.configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	log.Trace("Loaded config from %s", root.configPath)

	s := &settings{
		cfg:     cfg,
		export:  cfg.ExportSettings(),
		options: cfg.PrintOptions(),
		paper:   cfg.PaperSize,
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		s.options.Rows = f.rows
	}
	if flags.Changed("columns") {
		s.options.Columns = f.columns
	}
	if flags.Changed("font-size") {
		s.options.FontSize = f.fontSize
	}
	if flags.Changed("orientation") {
		s.options.Orientation = models.Orientation(f.orientation)
	}
	if flags.Changed("no-borders") {
		s.options.ShowBorders = !f.noBorders
	}
	if flags.Changed("paper") {
		s.paper = f.paper
	}
	if flags.Changed("term-separator") {
		s.export.BetweenTermAndDefinition = f.termSeparator
	}
	if flags.Changed("card-separator") {
		s.export.BetweenCards = f.cardSeparator
	}

	if !s.options.Orientation.IsValid() {
		return nil, fmt.Errorf("invalid orientation %q: want portrait or landscape", s.options.Orientation)
	}
	if err := config.ValidatePaperSize(s.paper); err != nil {
		return nil, err
	}

	log.Debug("Print options: %dx%d grid, %.0fpx font, %s, borders=%t, %s paper",
		s.options.Rows, s.options.Columns, s.options.FontSize, s.options.Orientation, s.options.ShowBorders, s.paper)
	return s, nil
}

// readInput reads the export from a file argument, or stdin when the
// argument is missing or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read export: %w", err)
	}
	return string(data), nil
}
