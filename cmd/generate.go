package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rescom/rescom/internal/config"
	"github.com/rescom/rescom/internal/generator"
	"github.com/rescom/rescom/internal/ui"
	"github.com/rescom/rescom/pkg/log"
)

var (
	inputPath     string
	outputPath    string
	generatorName string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compile the resources listed in a configuration file into a C++ header",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(inputPath, outputPath, generatorName); err != nil {
			fmt.Fprintf(os.Stderr, "rescom error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Configuration file listing the resources to embed")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (defaults to stdout)")
	generateCmd.Flags().StringVarP(&generatorName, "generator", "G", "", "Generator to run (defaults to the registered default)")
	generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}

// registerGenerators populates the registry with every concrete
// generator. Registration happens here, once, at selection time; the
// registry carries no ambient global state.
func registerGenerators(reg *generator.Registry) {
	reg.Register("legacy", func(cfg *config.Config) generator.Generator {
		return generator.NewCppGenerator(cfg)
	}, true)
}

// runGenerate parses the configuration, selects a generator by name (or
// the default), and runs it. Generation happens into an in-memory
// buffer; the result is released to its destination only on success, so
// a failed run never leaves a partial artifact behind.
func runGenerate(input, output, genName string) error {
	cfg, err := config.Load(input)
	if err != nil {
		return err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return err
	}

	reg := generator.NewRegistry()
	registerGenerators(reg)

	gen, err := reg.Create(genName, cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := gen.Generate(&buf); err != nil {
		return err
	}

	return releaseResults(&buf, output)
}

// releaseResults writes the finished artifact to stdout, or to the
// output file via a uniquely named temp file and a rename so the final
// path only ever holds a complete header.
func releaseResults(buf *bytes.Buffer, output string) error {
	if output == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	tmpPath := filepath.Join(filepath.Dir(output), fmt.Sprintf(".%s.%s.tmp", filepath.Base(output), uuid.NewString()))
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to open '%s' for writing: %w", output, err)
	}
	if err := os.Rename(tmpPath, output); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("unable to open '%s' for writing: %w", output, err)
	}

	ui.PrintSuccess("generate", output)
	return nil
}
