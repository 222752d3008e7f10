package coverage

import (
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"path/filepath"

	"golang.org/x/tools/cover"

	"github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

type span struct {
	startLine, startCol int
	endLine, endCol     int
}

func (s span) contains(b cover.ProfileBlock) bool {
	if b.StartLine < s.startLine || (b.StartLine == s.startLine && b.StartCol < s.startCol) {
		return false
	}
	if b.EndLine > s.endLine || (b.EndLine == s.endLine && b.EndCol > s.endCol) {
		return false
	}
	return true
}

// countFunctions reports a function as covered when any statement block in
// its body ran. Functions without statements are not counted.
func countFunctions(root, modulePath string, profiles []*cover.Profile) (tally, error) {
	var t tally
	for _, p := range profiles {
		rel := relativeName(p.FileName, modulePath)
		spans, err := functionSpans(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return tally{}, err
		}
		for _, s := range spans {
			counted, hit := false, false
			for _, b := range p.Blocks {
				if b.NumStmt == 0 || !s.contains(b) {
					continue
				}
				counted = true
				if b.Count > 0 {
					hit = true
					break
				}
			}
			if !counted {
				continue
			}
			t.total++
			if hit {
				t.covered++
			}
		}
	}
	return t, nil
}

func functionSpans(path string) ([]span, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		line := 0
		if list, ok := err.(scanner.ErrorList); ok && len(list) > 0 {
			line = list[0].Pos.Line
		}
		return nil, errors.NewParseError(path, line, err)
	}

	var spans []span
	ast.Inspect(file, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncDecl)
		if !ok {
			return true
		}
		if fn.Body == nil {
			return false
		}
		body := fn.Body
		start := fset.Position(body.Lbrace)
		end := fset.Position(body.Rbrace)
		spans = append(spans, span{
			startLine: start.Line, startCol: start.Column,
			endLine: end.Line, endCol: end.Column + 1,
		})
		// Literals inside fn are attributed to fn.
		return false
	})
	return spans, nil
}
