package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		location := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	}
	return root
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		flags    flags
		wantErr  error
		contains []string
	}{
		{
			name: "reports and fails",
			files: map[string]string{
				"package.json":      `{}`,
				"test/user.test.js": "user.should.be.ok;\n",
			},
			flags:    flags{format: "text", logLevel: "warn"},
			wantErr:  errProblemsFound,
			contains: []string{"user.test.js:1:1: error: Should-js assertions should be methods. (no-property-assertions)"},
		},
		{
			name: "clean project",
			files: map[string]string{
				"package.json":      `{}`,
				"test/user.test.js": "user.should.equal(1);\n",
			},
			flags: flags{format: "text", logLevel: "warn"},
		},
		{
			name: "discovered config downgrades severity",
			files: map[string]string{
				"package.json":      `{}`,
				".shouldlint.yaml":  "rules:\n  no-property-assertions: warn\n",
				"test/user.test.js": "user.should.be.ok;\n",
			},
			flags:    flags{format: "yaml", logLevel: "warn"},
			contains: []string{"severity: warn", "warnings: 1"},
		},
		{
			name: "name flag",
			files: map[string]string{
				"package.json":      `{}`,
				"test/user.test.js": "expect(user);\n",
			},
			flags:    flags{format: "json", logLevel: "warn", names: []string{"expect"}},
			wantErr:  errProblemsFound,
			contains: []string{`"rule": "no-property-assertions"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeProject(t, tt.files)
			var stdout, stderr bytes.Buffer
			opts := tt.flags
			err := run(context.Background(), &stdout, &stderr, &opts, []string{root})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			for _, expected := range tt.contains {
				assert.Contains(t, stdout.String(), expected)
			}
		})
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, &flags{format: "xml", logLevel: "warn"}, []string{"."})
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "unsupported format")
}
