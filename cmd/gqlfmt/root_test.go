package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/gqlfmt/config"
)

func run(t *testing.T, stdin string, args ...string) (string, *test.Hook, error) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	cmd := newRootCommand(config.Default(), logger)

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), hook, err
}

func TestStdin(t *testing.T) {
	out, _, err := run(t, "{a{b}}")
	require.NoError(t, err)
	assert.Equal(t, "{\n  a {\n    b\n  }\n}\n", out)
}

func TestIndentFlag(t *testing.T) {
	out, _, err := run(t, "{a{b}}", "--indent", "4")
	require.NoError(t, err)
	assert.Equal(t, "{\n    a {\n        b\n    }\n}\n", out)
}

func TestIndentMustBePositive(t *testing.T) {
	for _, width := range []string{"0", "-3"} {
		out, _, err := run(t, "{a{b}}", "--indent", width)
		assert.EqualError(t, err, "invalid --indent "+width+": must be at least 1")
		assert.Empty(t, out)
	}
}

func TestIndentFlagHelp(t *testing.T) {
	logger, _ := test.NewNullLogger()
	flag := newRootCommand(config.Default(), logger).Flags().Lookup("indent")
	require.NotNil(t, flag)
	assert.Equal(t, "2", flag.DefValue)
	assert.Contains(t, flag.Usage, "at least 1")
}

func TestSyntaxErrorIsLogged(t *testing.T) {
	_, hook, err := run(t, "{a(")
	require.Error(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "<stdin>", hook.LastEntry().Data["file"])
}

func TestWriteRewritesFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "query.graphql")
	bad := filepath.Join(dir, "broken.graphql")
	require.NoError(t, os.WriteFile(good, []byte("query Q { a }"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("query Q {"), 0o644))

	out, hook, err := run(t, "", "-w", good, bad)
	require.Error(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, "query Q {\n  a\n}\n", string(data))

	data, err = os.ReadFile(bad)
	require.NoError(t, err)
	assert.Equal(t, "query Q {", string(data))

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, bad, hook.LastEntry().Data["file"])
}

func TestWriteNeedsFiles(t *testing.T) {
	_, _, err := run(t, "{a}", "-w")
	assert.EqualError(t, err, "cannot use -w with standard input")
}
