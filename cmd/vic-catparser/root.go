package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fcgreg/VIC-CatParser/internal/config"
	"github.com/fcgreg/VIC-CatParser/internal/log"
	"github.com/fcgreg/VIC-CatParser/internal/model"
	"github.com/fcgreg/VIC-CatParser/internal/pipeline"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewRootCmd creates the root command for vic-catparser.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName + " json_file category",
		Short: "Extract one Category from a Project VIC JSON file",
		Long: `vic-catparser reads a Project VIC JSON hash-set file, keeps the records whose
Category equals the requested category, and writes them out.

Output formats:
  json      the source document with only the matching records (default)
  readable  one labeled text block per record
  hashonly  one hash value per line (select the algorithm with --hash)
  markdown  a summary report with one table per record

Examples:
  # Category 1 records as JSON on stdout
  vic-catparser vic.json 1

  # MD5 hashes of Category 2 records into a file
  vic-catparser vic.json 2 -f hashonly --hash md5 -o cat2.txt

  # Human-readable listing
  vic-catparser vic.json 1 -f readable

Configuration file (.vic-catparser) example:
  format: hashonly
  hash: sha1
  pretty: true`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          exactArgs(2),
		RunE:          runRootCmd,
	}

	cmd.SetVersionTemplate(versionTemplate())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	})

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Write output to the specified file (creates directories if needed; default: stdout)")
	cmd.Flags().StringP("format", "f", config.DefaultFormat.String(),
		"Output format: "+strings.Join(model.FormatNames(), ", "))
	cmd.Flags().String("hash", config.DefaultHash.String(),
		"Hash algorithm for hashonly output: "+strings.Join(model.HashAlgorithmNames(), ", "))
	cmd.Flags().Bool("pretty", false, "Indent JSON output")

	// Document shape flags
	cmd.Flags().String("records-field", config.DefaultRecordsField,
		"Top-level key holding the record collection")
	cmd.Flags().String("category-field", config.DefaultCategoryField,
		"Record field holding the category")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .vic-catparser in current or home directory)")

	// Logging flags
	cmd.Flags().BoolP("quiet", "q", false, "Suppress the summary line")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.Flags().Bool("log-json", false, "Write log lines as JSON")

	return cmd
}

// exactArgs is cobra.ExactArgs with the error marked as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", config.ErrUsage, err)
		}
		return nil
	}
}

// Execute runs the root command and exits with the code matching the error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// runRootCmd executes the filter pipeline for one file and category.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := model.NewRun(cfg.InputFile, cfg.Category, cfg.OutputFile)
	p := pipeline.DefaultPipeline(cfg, cmd.OutOrStdout(), pipeline.WithLogger(logger))
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	if !cfg.Quiet {
		printSummary(cmd.ErrOrStderr(), run)
	}
	return nil
}

// buildConfig creates a Config from the positional arguments, cobra flags and
// the optional defaults file. Flags set on the command line win over the file.
// Format and hash names are checked here, before any input is opened.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.InputFile = args[0]
	cfg.Category = args[1]

	flags := cmd.Flags()

	formatName, err := flags.GetString("format")
	if err != nil {
		return nil, err
	}
	if cfg.Format, err = config.ParseFormat(formatName); err != nil {
		return nil, err
	}

	hashName, err := flags.GetString("hash")
	if err != nil {
		return nil, err
	}
	if cfg.Hash, err = config.ParseHash(hashName); err != nil {
		return nil, err
	}

	if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
		return nil, err
	}
	if err := applyConfigFile(cmd, cfg); err != nil {
		return nil, err
	}

	if cfg.OutputFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if flags.Changed("pretty") {
		if cfg.Pretty, err = flags.GetBool("pretty"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("records-field") {
		if cfg.RecordsField, err = flags.GetString("records-field"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("category-field") {
		if cfg.CategoryField, err = flags.GetString("category-field"); err != nil {
			return nil, err
		}
	}
	if cfg.Quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
		return nil, err
	}
	if cfg.LogJSON, err = flags.GetBool("log-json"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyConfigFile loads the defaults file, if any, and applies it to cfg.
// The format and hash from the file only apply when the matching flag was
// not given. A missing file is an error only when --config names it.
func applyConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath == "" {
		if explicitConfigPath {
			return fmt.Errorf("%w: %w: %s", config.ErrUsage, config.ErrConfigNotFound, cfg.ConfigFilePath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicitConfigPath {
			return nil
		}
		return fmt.Errorf("%w: failed to load config file %s: %w", config.ErrUsage, configPath, err)
	}

	// Flags given on the command line override the file.
	format, hash := cfg.Format, cfg.Hash
	if err := file.Apply(cfg); err != nil {
		return fmt.Errorf("config file %s: %w", configPath, err)
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}
	if cmd.Flags().Changed("hash") {
		cfg.Hash = hash
	}
	return nil
}

// setupLogger creates the structured logger for the run.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return log.NewJSONLogger(w, cfg.Verbose)
	}
	return log.NewLogger(w, cfg.Verbose)
}

// printSummary writes the one-line result summary with grouped digits.
func printSummary(w io.Writer, run *model.Run) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Found %d of %d records in Category %s\n",
		run.Matches.Len(), run.Matches.Scanned(), run.Category)
}
