// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2md/internal/convert"
	"github.com/pdiddy/pdf2md/internal/resolve"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf2md CLI. The conversion itself runs
// on the root command; there are no pipeline stages to split into subcommands.
var rootCmd = &cobra.Command{
	Use:   "pdf2md <input.pdf>",
	Short: "Extract PDF text into a per-page Markdown document",
	Long: `pdf2md reads the embedded text layer of a PDF and writes a Markdown file
with one section per page. The output path comes from --output (a directory
or a file), or defaults to an output/ directory next to the binary.

Scanned (image-only) pages carry no text layer and render as empty-page
sections; encrypted PDFs are not supported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// A missing argument still prints usage; failures past this point
		// print only the diagnostic.
		cmd.SilenceUsage = true

		outputFlag, _ := cmd.Flags().GetString("output")
		frontmatter, _ := cmd.Flags().GetBool("frontmatter")

		resolver, err := resolve.New(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if dir := viper.GetString("output_dir"); dir != "" {
			resolver.OutputDir = dir
		}

		job, err := resolver.Resolve(args[0], outputFlag)
		if err != nil {
			return err
		}

		opts := convert.Options{Frontmatter: frontmatter}
		return convert.Run(convert.PDFExtractor{}, job, opts, cmd.OutOrStdout())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2md.yaml or ~/.config/pdf2md/config.yaml)")
	rootCmd.Flags().StringP("output", "o", "", "output directory or Markdown file path")
	rootCmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter with source and page count")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2md"))
		}
	}

	viper.SetEnvPrefix("PDF2MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
