// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the schema-extract CLI. It recovers
// table and column definitions from database documentation PDFs and writes
// them as a Markdown draft for manual review.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/schema-extract/internal/pdftext"
	"github.com/pdiddy/schema-extract/internal/pipeline"
	"github.com/pdiddy/schema-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// errMissingPDF is returned when no PDF path is given.
var errMissingPDF = errors.New("missing PDF file argument")

// rootCmd extracts a schema draft from the PDF named by its only argument.
var rootCmd = &cobra.Command{
	Use:   "schema-extract <pdf_file>",
	Short: "Recover database table definitions from a documentation PDF",
	Long: `schema-extract reads the leading pages of a database documentation PDF
(such as an Access Documenter report), finds "Table: <name>" headers and
"<column> <type>" lines, and writes the tables it finds to
database_schema_extracted.md.

The result is a draft: review it and add missing columns, primary keys,
foreign keys, and relationships by hand.`,
	Args:          requirePDF,
	RunE:          runExtract,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./schema-extract.yaml or ~/.config/schema-extract/schema-extract.yaml)")

	flags := rootCmd.Flags()
	flags.Int("max-pages", types.DefaultMaxPages, "number of leading pages to read")
	flags.Int("progress-every", types.DefaultProgressEvery, "print a progress line every N pages")
	flags.StringP("output", "o", types.DefaultOutputFile, "Markdown draft to write (overwritten)")
	flags.String("backend", string(types.BackendNative), "PDF text backend: native or pdftotext")
	flags.Bool("normalize", false, "apply NFKC normalisation to page text (expands ligatures)")
	flags.String("export", "", "also write a yaml or json export beside the draft")

	for key, flag := range map[string]string{
		"max_pages":      "max-pages",
		"progress_every": "progress-every",
		"output":         "output",
		"backend":        "backend",
		"normalize":      "normalize",
		"export":         "export",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("schema-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "schema-extract"))
		}
	}

	viper.SetEnvPrefix("SCHEMA_EXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// requirePDF prints usage to stdout when the PDF argument is missing.
func requirePDF(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		printUsage(cmd.OutOrStdout())
		return errMissingPDF
	}
	return cobra.MaximumNArgs(1)(cmd, args)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: schema-extract <pdf_file>")
	fmt.Fprintln(w, "Example: schema-extract doc_rptObjects.pdf")
}

// extractionConfig resolves flags, environment and config file into a
// validated configuration.
func extractionConfig() (types.ExtractionConfig, error) {
	var cfg types.ExtractionConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.Defaults()
	return cfg, cfg.Validate()
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractionConfig()
	if err != nil {
		return err
	}

	_, err = pipeline.Run(args[0], cfg, cmd.OutOrStdout())
	if errors.Is(err, pdftext.ErrBackendUnavailable) {
		printInstallHint(cmd.OutOrStdout(), cfg.Backend)
	}
	return err
}

// printInstallHint explains how to provide the missing PDF backend.
func printInstallHint(w io.Writer, backend types.ExtractionBackend) {
	fmt.Fprintf(w, "ERROR: the %s PDF backend is not available.\n", backend)
	switch backend {
	case types.BackendPdftotext:
		fmt.Fprintln(w, "Install poppler-utils (apt install poppler-utils, brew install poppler)")
		fmt.Fprintln(w, "or rerun with --backend native.")
	default:
		fmt.Fprintln(w, "Rerun with --backend native or --backend pdftotext.")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
