package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/termfield"
)

const rowTemplate = `
template: "[{{.name}}|{{.score}}]"
fields:
  name:  {width: 6}
  score: {width: 5, justify: center, fill: "."}
`

// runCmd executes the root command with args. Logging is global, so these
// tests do not run in parallel.
func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWidthCommand(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"runes": {
			args: []string{"width", "Test", "\x1b[36mTest", "你好"},
			want: "4\n4\n2\n",
		},
		"cells": {
			args: []string{"width", "--cells", "Test", "\x1b[36mTest", "你好"},
			want: "4\n4\n4\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, _, err := runCmd(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWidthCommandRequiresArgs(t *testing.T) {
	_, _, err := runCmd(t, "", "width")
	assert.Error(t, err)
}

func TestRenderDocument(t *testing.T) {
	tpl := writeFile(t, "row.yaml", rowTemplate)
	data := writeFile(t, "data.json", `{"name": "\u001b[36mAnn\u001b[0m", "score": 7}`)
	tests := map[string]struct {
		strip string
		want  string
	}{
		"auto strips when not a terminal": {strip: "auto", want: "[Ann   |..7.]\n"},
		"always":                          {strip: "always", want: "[Ann   |..7.]\n"},
		"never":                           {strip: "never", want: "[\x1b[36mAnn\x1b[0m   |..7.]\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, _, err := runCmd(t, "", "render", "-t", tpl, "-d", data, "--strip", tt.strip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderYAMLDocument(t *testing.T) {
	tpl := writeFile(t, "row.yaml", rowTemplate)
	data := writeFile(t, "data.yaml", "name: Bob\nscore: 12\n")
	out, _, err := runCmd(t, "", "render", "-t", tpl, "-d", data)
	require.NoError(t, err)
	assert.Equal(t, "[Bob   |..12..]\n", out)
}

func TestRenderJSONLStdin(t *testing.T) {
	tpl := writeFile(t, "row.yaml", rowTemplate)
	stdin := "{\"name\":\"Ann\",\"score\":7}\n{\"name\":\"Bob\"}\n"
	out, _, err := runCmd(t, stdin, "render", "-t", tpl)
	require.NoError(t, err)
	assert.Equal(t, "[Ann   |..7.]\n[Bob   |......]\n", out)

	out, _, err = runCmd(t, stdin, "render", "-t", tpl, "--jsonl", "-")
	require.NoError(t, err)
	assert.Equal(t, "[Ann   |..7.]\n[Bob   |......]\n", out)
}

func TestRenderJSONLFile(t *testing.T) {
	tpl := writeFile(t, "row.yaml", rowTemplate)
	rows := writeFile(t, "rows.jsonl", "{\"name\":\"你好\",\"score\":1}\n")
	out, _, err := runCmd(t, "", "render", "-t", tpl, "--jsonl", rows, "--cells")
	require.NoError(t, err)
	assert.Equal(t, "[你好  |..1.]\n", out)
}

func TestRenderVerboseLogs(t *testing.T) {
	tpl := writeFile(t, "row.yaml", rowTemplate)
	_, errOut, err := runCmd(t, "{}\n", "render", "-v", "-t", tpl)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Loaded template")
	assert.Contains(t, errOut, "Rendered JSONL stream")
}

func TestRenderErrors(t *testing.T) {
	tpl := writeFile(t, "row.yaml", rowTemplate)
	between := writeFile(t, "between.yaml", "template: '{{.p}}'\nfields:\n  p: {width: 4, justify: between}\n")
	badTpl := writeFile(t, "bad.yaml", "template: x\nfields:\n  p: {justify: right}\n")
	data := writeFile(t, "data.yaml", "name: x\n")
	badData := writeFile(t, "bad-data.yaml", "name: [\n")

	tests := map[string]struct {
		args    []string
		stdin   string
		wantErr error
		wantMsg string
	}{
		"missing template flag": {
			args: []string{"render"},
		},
		"missing template file": {
			args:    []string{"render", "-t", filepath.Join(t.TempDir(), "nope.yaml")},
			wantErr: os.ErrNotExist,
		},
		"bad template": {
			args:    []string{"render", "-t", badTpl},
			wantErr: termfield.ErrUnsupportedMode,
		},
		"bad strip": {
			args:    []string{"render", "-t", tpl, "--strip", "sometimes"},
			wantMsg: "sometimes",
		},
		"data and jsonl": {
			args: []string{"render", "-t", tpl, "-d", data, "--jsonl", "-"},
		},
		"bad data": {
			args:    []string{"render", "-t", tpl, "-d", badData},
			wantMsg: "bad-data.yaml",
		},
		"bad record": {
			args:    []string{"render", "-t", between},
			stdin:   "{\"p\":[\"a\",\"b\"]}\n{\"p\":\"a\"}\n",
			wantErr: termfield.ErrBetweenShape,
			wantMsg: "record 2",
		},
		"bad json": {
			args:    []string{"render", "-t", tpl},
			stdin:   "{}\n{oops\n",
			wantMsg: "record 2",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCmd(t, tt.stdin, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "Error: ")
	assert.Contains(t, buf.String(), "boom")
}

func TestStripWriter(t *testing.T) {
	var buf bytes.Buffer
	w := stripWriter{w: &buf}
	n, err := w.Write([]byte("\x1b[1mbold\x1b[0m"))
	require.NoError(t, err)
	assert.Equal(t, len("\x1b[1mbold\x1b[0m"), n)
	assert.Equal(t, "bold", buf.String())
}

func TestExecuteExitCode(t *testing.T) {
	assert.Equal(t, 0, execute([]string{"width", "abc"}))
	assert.Equal(t, 1, execute([]string{"width"}))
}
