package lint

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, language *Language, source string) *sitter.Tree {
	t.Helper()
	tree, err := language.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestKindOf(t *testing.T) {
	source := "a.b(c);\n(d);\ntag`x`;\ne[f];"
	tree := parse(t, JavaScript, source)

	var kinds []Kind
	Walk(tree.RootNode(), func(n *sitter.Node) {
		if kind := KindOf(n); kind != Other {
			kinds = append(kinds, kind)
		}
	})
	expected := []Kind{
		ExpressionStatement, Call, PropertyAccess, Identifier, Identifier,
		ExpressionStatement, Parenthesized, Identifier,
		ExpressionStatement, Identifier,
		ExpressionStatement, ComputedAccess, Identifier, Identifier,
	}
	assert.Equal(t, expected, kinds)
	assert.Equal(t, Other, KindOf(nil))
}

func TestDispatch_DocumentOrder(t *testing.T) {
	source := "first.a;\nsecond(b);\nthird.c();"
	tree := parse(t, JavaScript, source)
	src := []byte(source)

	var visited []string
	record := func(n *sitter.Node) { visited = append(visited, n.Content(src)) }
	Dispatch(tree.RootNode(), Visitors{PropertyAccess: record}, Visitors{Call: record})
	assert.Equal(t, []string{"first.a", "second(b)", "third.c()", "third.c"}, visited)
}

func TestLanguageFor(t *testing.T) {
	tests := []struct {
		filename string
		expected *Language
		wantErr  bool
	}{
		{filename: "a.js", expected: JavaScript},
		{filename: "a.JSX", expected: JavaScript},
		{filename: "a.mjs", expected: JavaScript},
		{filename: "a.ts", expected: TypeScript},
		{filename: "a.cts", expected: TypeScript},
		{filename: "a.tsx", expected: TSX},
		{filename: "a.go", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			language, err := LanguageFor(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, language)
		})
	}
}

func TestFirstError(t *testing.T) {
	assert.Nil(t, FirstError(parse(t, JavaScript, "a.b.c();").RootNode()))
	assert.NotNil(t, FirstError(parse(t, JavaScript, "a.b.c(;").RootNode()))
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		value    string
		expected Severity
		wantErr  bool
	}{
		{value: "off", expected: Off},
		{value: "0", expected: Off},
		{value: "warn", expected: Warn},
		{value: "Warning", expected: Warn},
		{value: "1", expected: Warn},
		{value: "error", expected: Error},
		{value: "2", expected: Error},
		{value: "fatal", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			severity, err := ParseSeverity(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, severity)
		})
	}
}

func testRule() *Rule {
	return &Rule{
		ID: "no-bare-identifier",
		Meta: Meta{
			Docs:     Docs{Description: "test rule", Recommended: Warn},
			Messages: map[string]string{"bare": "Bare identifier."},
			Schema:   `{"type": "object", "properties": {"limit": {"type": "integer"}}, "additionalProperties": false}`,
			Type:     Suggestion,
		},
		DefaultOptions: Options{"limit": 1},
		New: func(options Options) (Checker, error) {
			opts := struct {
				Limit int `json:"limit"`
			}{}
			if err := options.Decode(&opts); err != nil {
				return nil, err
			}
			return func(ctx *Context) Visitors {
				return Visitors{ExpressionStatement: func(node *sitter.Node) {
					if len(ctx.Findings()) < opts.Limit && KindOf(node.NamedChild(0)) == Identifier {
						ctx.Report(node, "bare")
					}
				}}
			}, nil
		},
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(testRule()))
	assert.Error(t, registry.Register(testRule()), "duplicate")
	assert.Equal(t, []string{"no-bare-identifier"}, registry.IDs())

	_, err := registry.Configure("missing", Error, nil)
	assert.ErrorIs(t, err, ErrUnknownRule)
	_, err = registry.Configure("no-bare-identifier", Error, Options{"unknown": true})
	assert.Error(t, err)
	_, err = registry.Configure("no-bare-identifier", Error, Options{"limit": "two"})
	assert.Error(t, err)

	source := "a;\nb;\nc.d;\ne;"
	tree := parse(t, JavaScript, source)
	tests := []struct {
		name    string
		options Options
		lines   []int
	}{
		{name: "default options", lines: []int{1}},
		{name: "overridden options", options: Options{"limit": 5}, lines: []int{1, 2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configured, err := registry.Configure("no-bare-identifier", Warn, tt.options)
			require.NoError(t, err)
			ctx := NewContext("a.js", []byte(source), configured)
			Dispatch(tree.RootNode(), configured.Checker(ctx))
			var lines []int
			for _, finding := range ctx.Findings() {
				lines = append(lines, finding.Start.Line)
				assert.Equal(t, "Bare identifier.", finding.Message)
				assert.Equal(t, Warn, finding.Severity)
				assert.Equal(t, "no-bare-identifier", finding.Rule)
			}
			assert.Equal(t, tt.lines, lines)
		})
	}
}

func TestRegistry_InvalidRule(t *testing.T) {
	registry := NewRegistry()
	assert.Error(t, registry.Register(&Rule{}))
	rule := testRule()
	rule.Meta.Schema = `{"type": 5}`
	assert.Error(t, registry.Register(rule))
	rule = testRule()
	rule.DefaultOptions = Options{"limit": "one"}
	assert.Error(t, registry.Register(rule))
}

func TestFingerprint(t *testing.T) {
	source := []byte("x.should.be.ok;\n\nx.should.be.ok;")
	first := &Finding{Rule: "r", Path: "a.js", Message: "m", Offset: 0, EndOffset: 15}
	second := &Finding{Rule: "r", Path: "a.js", Message: "m", Offset: 17, EndOffset: 32}
	other := &Finding{Rule: "r", Path: "b.js", Message: "m", Offset: 0, EndOffset: 15}

	a := Fingerprint(first, source)
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Fingerprint(second, source))
	assert.NotEqual(t, a, Fingerprint(other, source))

	outOfRange := &Finding{Rule: "r", Path: "a.js", Message: "m", Offset: 10, EndOffset: 100}
	assert.NotPanics(t, func() { Fingerprint(outOfRange, source) })
}

func TestMerge(t *testing.T) {
	merged := Merge(Options{"name": []string{"should"}, "keep": true}, Options{"name": []string{"expect"}})
	assert.Equal(t, Options{"name": []string{"expect"}, "keep": true}, merged)
}
