package lint

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupportedLanguage is returned for files no grammar is registered for
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language couples a tree-sitter grammar with the file extensions it parses
type Language struct {
	Name       string
	Extensions []string
	grammar    func() *sitter.Language
}

var (
	JavaScript = &Language{Name: "javascript", Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}, grammar: javascript.GetLanguage}
	TypeScript = &Language{Name: "typescript", Extensions: []string{".ts", ".mts", ".cts"}, grammar: typescript.GetLanguage}
	TSX        = &Language{Name: "tsx", Extensions: []string{".tsx"}, grammar: tsx.GetLanguage}
)

// Languages lists the supported languages
var Languages = []*Language{JavaScript, TypeScript, TSX}

// LanguageFor returns the language of filename based on its extension
func LanguageFor(filename string) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, language := range Languages {
		for _, candidate := range language.Extensions {
			if ext == candidate {
				return language, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, filename)
}

// Parse parses src with the language grammar
func (l *Language) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(l.grammar())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s source: %w", l.Name, err)
	}
	return tree, nil
}

// FirstError returns the first syntax error or missing node under n in document order
func FirstError(n *sitter.Node) *sitter.Node {
	if n == nil || !n.HasError() && !n.IsMissing() {
		return nil
	}
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := FirstError(n.Child(i)); found != nil {
			return found
		}
	}
	return n
}
