package linter

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/shouldlint/lint"
)

// directiveRe matches `// shouldlint-disable-next-line rule-a, rule-b -- reason` and the eslint spelling
var directiveRe = regexp.MustCompile(`^(?://|/\*)\s*(?:shouldlint|eslint)-disable-(next-line|line)(?:\s+([^*]*?))?\s*(?:\*/)?$`)

// directives maps 1-based lines to the rules disabled on them; an empty list disables all rules
type directives map[int][]string

func parseDirectives(root *sitter.Node, src []byte) directives {
	result := directives{}
	lint.Walk(root, func(n *sitter.Node) {
		if n.Type() != "comment" {
			return
		}
		match := directiveRe.FindStringSubmatch(strings.TrimSpace(n.Content(src)))
		if match == nil {
			return
		}
		line := int(n.StartPoint().Row) + 1
		if match[1] == "next-line" {
			line = int(n.EndPoint().Row) + 2
		}
		result.add(line, parseRuleList(match[2]))
	})
	return result
}

func parseRuleList(text string) []string {
	if i := strings.Index(text, "--"); i != -1 {
		text = text[:i]
	}
	var ids []string
	for _, id := range strings.Split(text, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (d directives) add(line int, ids []string) {
	prev, ok := d[line]
	if ok && len(prev) == 0 {
		return
	}
	if len(ids) == 0 {
		d[line] = []string{}
		return
	}
	d[line] = append(prev, ids...)
}

func (d directives) suppresses(finding *lint.Finding) bool {
	if finding.Fatal {
		return false
	}
	ids, ok := d[finding.Start.Line]
	if !ok {
		return false
	}
	if len(ids) == 0 {
		return true
	}
	for _, id := range ids {
		if id == finding.Rule {
			return true
		}
	}
	return false
}
