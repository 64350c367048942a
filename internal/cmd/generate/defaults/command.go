// Package defaults provides the "generate defaults" subcommand.
package defaults

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Options holds the command-line options for the defaults generator.
type Options struct {
	TypeNames   string
	TagName     string
	Output      string
	PackageName string
}

// Run executes the defaults generation command.
func Run(args []string) error {
	fs := flag.NewFlagSet("generate defaults", flag.ExitOnError)

	var opts Options
	fs.StringVar(&opts.TypeNames, "type", "", "comma-separated struct type names (required)")
	fs.StringVar(&opts.TagName, "tag", "json", "tag name for field key resolution")
	fs.StringVar(&opts.Output, "output", "", "output file path (default: <source>_defaults.go)")
	fs.StringVar(&opts.PackageName, "package", "", "output package name (default: same as input)")

	fs.Usage = func() {
		printHelp()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.TypeNames == "" {
		printHelp()
		return fmt.Errorf("-type flag is required")
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		printHelp()
		return fmt.Errorf("exactly one source file is required")
	}

	sourceFile := remaining[0]

	return runGenerate(sourceFile, opts)
}

func runGenerate(sourceFile string, opts Options) error {
	typeNames := splitTypeNames(opts.TypeNames)

	pkg, structTypes, err := parseSourceFile(sourceFile, typeNames)
	if err != nil {
		return fmt.Errorf("failed to parse source file: %w", err)
	}

	pkgName := opts.PackageName
	if pkgName == "" {
		pkgName = pkg.Name
	}

	outputFile := opts.Output
	if outputFile == "" {
		outputFile = defaultOutputFile(sourceFile)
	}

	var analyses []TypeAnalysis
	for i, st := range structTypes {
		analysis, err := analyzeStruct(typeNames[i], st, opts.TagName)
		if err != nil {
			return fmt.Errorf("failed to analyze struct %s: %w", typeNames[i], err)
		}
		analyses = append(analyses, *analysis)
	}

	code, err := generateCode(analyses, GeneratorConfig{
		PackageName: pkgName,
		SourceFile:  filepath.Base(sourceFile),
		TagName:     opts.TagName,
	})
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	if err := os.WriteFile(outputFile, code, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "generated %s\n", outputFile)

	return nil
}

func splitTypeNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// defaultOutputFile returns the default output file name based on the source file.
// e.g., "config.go" -> "config_defaults.go"
func defaultOutputFile(sourceFile string) string {
	dir := filepath.Dir(sourceFile)
	base := filepath.Base(sourceFile)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, name+"_defaults"+ext)
}

func printHelp() {
	fmt.Fprintln(os.Stderr, `anaume generate defaults - Generate EnumerateFields methods

Generates an EnumerateFields() map[string]any method for each listed struct
type, so defaults filling can walk top-level fields without reflection.

Usage:
  go tool anaume generate defaults [options] <source-file>

Options:
  -type string      Comma-separated struct type names (required)
  -tag string       Tag name for field key resolution (default "json")
  -output string    Output file path (default: <source>_defaults.go)
  -package string   Output package name (default: same as input)

Examples:
  go tool anaume generate defaults -type AppConfig config.go
  go tool anaume generate defaults -type AppConfig,FeatureFlags config.go

For use with go:generate:
  //go:generate go tool anaume generate defaults -type AppConfig config.go`)
}
