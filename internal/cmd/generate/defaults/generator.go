package defaults

import (
	"fmt"
	"go/format"
	"strings"
)

// GeneratorConfig holds the settings for code generation.
type GeneratorConfig struct {
	PackageName string
	SourceFile  string
	TagName     string
}

// generateCode renders the EnumerateFields methods for the analyzed types
// and formats the result with gofmt.
func generateCode(analyses []TypeAnalysis, cfg GeneratorConfig) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by anaume generate defaults; DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// Source: %s\n\n", cfg.SourceFile)
	fmt.Fprintf(&b, "package %s\n", cfg.PackageName)

	for _, analysis := range analyses {
		b.WriteString("\n")
		writeEnumerateFields(&b, analysis)
	}

	formatted, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}

	return formatted, nil
}

func writeEnumerateFields(b *strings.Builder, analysis TypeAnalysis) {
	recv := receiverName(analysis.TypeName)

	fmt.Fprintf(b, "// EnumerateFields returns the top-level field values of %s keyed by\n", analysis.TypeName)
	fmt.Fprintf(b, "// their serialized names, for use as defaults when filling snapshots.\n")
	fmt.Fprintf(b, "func (%s %s) EnumerateFields() map[string]any {\n", recv, analysis.TypeName)

	if len(analysis.Fields) == 0 {
		fmt.Fprintf(b, "\treturn map[string]any{}\n")
	} else {
		fmt.Fprintf(b, "\treturn map[string]any{\n")
		for _, f := range analysis.Fields {
			fmt.Fprintf(b, "\t\t%q: %s.%s,\n", f.Key, recv, f.FieldName)
		}
		fmt.Fprintf(b, "\t}\n")
	}

	fmt.Fprintf(b, "}\n")
}

// receiverName derives a short receiver from the type name, e.g.
// "AppConfig" -> "a".
func receiverName(typeName string) string {
	for _, r := range typeName {
		return strings.ToLower(string(r))
	}
	return "v"
}
