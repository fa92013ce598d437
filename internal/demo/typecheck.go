package demo

import (
	"embed"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"primobs/pkg/serrors"
	"strings"

	"github.com/go-faster/errors"
)

//go:embed snippets/*.go.txt
var snippets embed.FS

const (
	legacySnippet  = "legacy.go"
	nominalSnippet = "nominal.go"
)

// Diagnostic is a single type error reported for a snippet.
type Diagnostic struct {
	Pos string
	Msg string
}

func (d Diagnostic) String() string { return d.Pos + ": " + d.Msg }

// CheckSnippet parses and type-checks a self-contained Go source file and
// returns the type errors it contains. An empty result means the file
// compiles. Snippets must not import other packages.
func CheckSnippet(name string, src []byte) ([]Diagnostic, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, name, src, parser.AllErrors)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, errors.Wrap(err, "parse"), "checking %s", name)
	}
	if len(file.Imports) > 0 {
		return nil, serrors.With(serrors.ErrInternal, "checking %s: snippets cannot import packages", name)
	}

	var diags []Diagnostic
	conf := types.Config{
		Error: func(err error) {
			var terr types.Error
			if errors.As(err, &terr) {
				diags = append(diags, Diagnostic{Pos: fset.Position(terr.Pos).String(), Msg: terr.Msg})
			}
		},
	}
	// errors are collected through conf.Error
	_, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)

	return diags, nil
}

// loadSnippet returns the embedded source for name together with the line
// holding the call under demonstration.
func loadSnippet(name string) ([]byte, string, error) {
	src, err := snippets.ReadFile(path.Join("snippets", name+".txt"))
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrInternal, err, "reading snippet %s", name)
	}

	var call string
	for _, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "AssignPack(") {
			call = strings.TrimSpace(line)
		}
	}

	return src, call, nil
}

func checkEmbedded(name string) (string, []Diagnostic, error) {
	src, call, err := loadSnippet(name)
	if err != nil {
		return "", nil, err
	}

	diags, err := CheckSnippet(name, src)
	if err != nil {
		return "", nil, err
	}

	return call, diags, nil
}
