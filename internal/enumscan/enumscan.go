// Package enumscan finds enumeration-like const groups in Go source.
//
// A named type declared in the scanned package whose underlying type
// is an integer or string basic type, together with the constants
// declared with that type, is treated as an enumeration. No directives
// or annotations needed — the typed const group is the marker.
package enumscan

import (
	"fmt"
	"go/constant"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// Member is a single constant of an enumeration. Int carries the value
// for integer enums, Str for string enums.
type Member struct {
	Name string
	Int  int64
	Str  string
}

// Enum is a named constant group.
type Enum struct {
	TypeName string
	IsString bool
	Members  []Member
}

// Result holds the enumerations of one scanned package.
type Result struct {
	PackageName string
	PackagePath string
	Enums       []Enum
}

// Scan loads the package matching pattern and collects its
// enumerations.
//
// The pattern follows go command semantics:
//   - "." for current directory
//   - import path like "github.com/foo/bar"
//   - absolute or relative directory path
func Scan(pattern string) (*Result, error) {
	return ScanDir(pattern, "")
}

// ScanDir is like Scan but allows specifying a working directory.
func ScanDir(pattern, dir string) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles |
			packages.NeedTypes | packages.NeedModule,
		Dir: dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %q", pattern)
	}

	if len(pkgs) > 1 {
		return nil, fmt.Errorf("multiple packages found matching %q; specify a single package", pattern)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("package errors: %v", pkg.Errors[0])
	}

	result := &Result{
		PackageName: pkg.Types.Name(),
		PackagePath: pkg.PkgPath,
	}

	byType := make(map[string]*Enum)
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types {
			continue
		}
		basic, ok := named.Underlying().(*types.Basic)
		if !ok {
			continue
		}

		typeName := named.Obj().Name()
		switch {
		case basic.Info()&types.IsInteger != 0:
			iv, exact := constant.Int64Val(c.Val())
			if !exact {
				continue
			}
			e := byType[typeName]
			if e == nil {
				e = &Enum{TypeName: typeName}
				byType[typeName] = e
			}
			if e.IsString {
				continue
			}
			e.Members = append(e.Members, Member{Name: c.Name(), Int: iv})
		case basic.Info()&types.IsString != 0:
			e := byType[typeName]
			if e == nil {
				e = &Enum{TypeName: typeName, IsString: true}
				byType[typeName] = e
			}
			if !e.IsString {
				continue
			}
			e.Members = append(e.Members, Member{Name: c.Name(), Str: constant.StringVal(c.Val())})
		}
	}

	for _, e := range byType {
		sortMembers(e)
		result.Enums = append(result.Enums, *e)
	}
	sort.Slice(result.Enums, func(i, j int) bool {
		return result.Enums[i].TypeName < result.Enums[j].TypeName
	})
	return result, nil
}

// sortMembers orders integer members by value then name, and string
// members by name. Scope names come back alphabetically, so the
// declaration order is not recoverable; this keeps output stable.
func sortMembers(e *Enum) {
	sort.Slice(e.Members, func(i, j int) bool {
		a, b := e.Members[i], e.Members[j]
		if !e.IsString && a.Int != b.Int {
			return a.Int < b.Int
		}
		return a.Name < b.Name
	})
}
