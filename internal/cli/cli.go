package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"transgen/internal/config"
	"transgen/internal/emitter"
	"transgen/internal/language"
	"transgen/internal/parser"
	"transgen/internal/textutil"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("transgen failed")
		os.Exit(1)
	}
}

// options holds flag values. Empty values fall back to config.
type options struct {
	input  string
	output string
	header string
	langs  string
	module bool
}

// settings is the resolved configuration for one run.
type settings struct {
	input  string
	output string
	header string
	codes  []language.Code
	module bool
}

// NewRootCmd builds the command tree. Running the root command converts.
func NewRootCmd() *cobra.Command {
	var cfg *config.Config
	rootOpts := &options{}

	rootCmd := &cobra.Command{
		Use:   "transgen",
		Short: "Generate Rust translation match arms from the TypeScript translation table",
		Long: `Reads the translations object from a TypeScript source file and writes the
equivalent (key, Language) match arms for the Rust TranslationService.
Keys missing a language fall back to the key itself.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(loaded.LogLevel)
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.resolve(cfg)
			if err != nil {
				return err
			}
			return runConvert(cmd.OutOrStdout(), s)
		},
	}
	addSourceFlags(rootCmd, rootOpts)
	addOutputFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(convertCmd(&cfg))
	rootCmd.AddCommand(listCmd(&cfg))

	return rootCmd
}

func convertCmd(cfg **config.Config) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write Rust match arms for every translation entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(*cfg)
			if err != nil {
				return err
			}
			return runConvert(cmd.OutOrStdout(), s)
		},
	}
	addSourceFlags(cmd, opts)
	addOutputFlags(cmd, opts)
	return cmd
}

func listCmd(cfg **config.Config) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the extracted entries and the languages each one defines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(*cfg)
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), s)
		},
	}
	addSourceFlags(cmd, opts)
	return cmd
}

func addSourceFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "TypeScript file holding the translations (default $TRANSGEN_INPUT or "+config.DefaultInputPath+")")
	cmd.Flags().StringVar(&opts.header, "header", "", "Declaration that opens the translations object (default $TRANSGEN_HEADER)")
	cmd.Flags().StringVar(&opts.langs, "langs", "", "Comma-separated target languages in emission order (default $TRANSGEN_LANGS or en,lg,sw)")
}

func addOutputFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Generated file (default $TRANSGEN_OUTPUT or "+config.DefaultOutputPath+")")
	cmd.Flags().BoolVar(&opts.module, "module", false, "Write a complete Rust module instead of bare match arms")
}

func (o *options) resolve(cfg *config.Config) (settings, error) {
	s := settings{
		input:  cfg.InputPath,
		output: cfg.OutputPath,
		header: cfg.BlockHeader,
		codes:  cfg.Languages,
		module: o.module,
	}
	if o.input != "" {
		s.input = o.input
	}
	if o.output != "" {
		s.output = o.output
	}
	if o.header != "" {
		s.header = o.header
	}
	if o.langs != "" {
		codes, err := language.ParseList(o.langs)
		if err != nil {
			return settings{}, fmt.Errorf("parse --langs: %w", err)
		}
		s.codes = codes
	}
	return s, nil
}

func extract(s settings) (*parser.Result, error) {
	src, err := os.ReadFile(s.input)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	extractor, err := parser.NewExtractor(s.header)
	if err != nil {
		return nil, err
	}

	result, err := extractor.Extract(string(src))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", s.input, err)
	}
	return result, nil
}

// runConvert handles the convert command. Nothing is written unless
// extraction and rendering both succeed.
func runConvert(out io.Writer, s settings) error {
	result, err := extract(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Found %d translation entries\n", len(result.Entries))

	lines := emitter.Emit(result.Entries, s.codes)

	rendered := emitter.Render(lines)
	lineCount := len(lines)
	if s.module {
		rendered, err = emitter.RenderModule(result.Entries, s.codes)
		if err != nil {
			return err
		}
		lineCount = strings.Count(rendered, "\n")
	}

	if dir := filepath.Dir(s.output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(s.output, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	fmt.Fprintf(out, "Generated %d lines of Rust code\n", lineCount)
	fmt.Fprintf(out, "Output written to %s\n", s.output)

	log.Debug().
		Str("input", s.input).
		Str("output", s.output).
		Int("entries", len(result.Entries)).
		Int("discarded", len(result.Discarded)).
		Str("sha256", textutil.Hash(rendered)).
		Msg("Conversion complete")

	return nil
}

// runList handles the list command. Only the selected languages are listed,
// in their selected order.
func runList(out io.Writer, s settings) error {
	result, err := extract(s)
	if err != nil {
		return err
	}

	for _, e := range result.Entries {
		var codes []string
		for _, c := range e.Translations.Codes(s.codes) {
			codes = append(codes, c.String())
		}
		fmt.Fprintf(out, "%s\t%s\n", e.Key, strings.Join(codes, ","))
	}
	fmt.Fprintf(out, "Found %d translation entries\n", len(result.Entries))
	return nil
}
