package defaults

import (
	"fmt"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// ParsedPackage holds the parsed package information.
type ParsedPackage struct {
	Name string
	Path string
}

// parseSourceFile type-checks the package containing sourceFile and returns
// the package info plus the struct type for each requested name, in order.
func parseSourceFile(sourceFile string, typeNames []string) (*ParsedPackage, []*types.Struct, error) {
	absPath, err := filepath.Abs(sourceFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	dir := filepath.Dir(absPath)

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("no packages found")
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, nil, fmt.Errorf("package errors: %v", pkg.Errors)
	}

	structTypes := make([]*types.Struct, 0, len(typeNames))
	for _, typeName := range typeNames {
		obj := pkg.Types.Scope().Lookup(typeName)
		if obj == nil {
			return nil, nil, fmt.Errorf("type %s not found in package %s", typeName, pkg.Name)
		}

		structType, ok := obj.Type().Underlying().(*types.Struct)
		if !ok {
			return nil, nil, fmt.Errorf("%s is not a struct type", typeName)
		}
		structTypes = append(structTypes, structType)
	}

	return &ParsedPackage{
		Name: pkg.Name,
		Path: pkg.PkgPath,
	}, structTypes, nil
}
