package main

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/aretw0/ckbfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gradientManifest = "../../pkg/effects/gradient/gradient.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ckbfx version "+ckbfx.Version+"\n", out)
}

func TestVersion_Verbose(t *testing.T) {
	t.Cleanup(func() {
		cmd, _, err := rootCmd.Find([]string{"version"})
		require.NoError(t, err)
		require.NoError(t, cmd.Flags().Set("verbose", "false"))
	})

	out, err := execute(t, "version", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "ckbfx version "+ckbfx.Version+"\n")
	assert.Contains(t, out, "go: go")
	assert.Contains(t, out, "builtin effects: [gradient]")
}

func TestGUID(t *testing.T) {
	out, err := execute(t, "guid")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\{[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\}\n$`), out)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", gradientManifest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "guid %7B62909e5a-5f3e-4720-8638-f89c32367fd1%7D\n"))
	assert.Contains(t, out, "preset Rainbow ")
}

func TestInfo_FromEnvironment(t *testing.T) {
	t.Setenv("CKBFX_ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("CKBFX_MANIFEST", gradientManifest)
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "name Gradient\n")
}

func TestPreview(t *testing.T) {
	out, err := execute(t, "preview", "--width", "4", "0:ff0000 100:0000ff")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0:ff0000 100:0000ff", lines[1])

	_, err = execute(t, "preview", "--width", "4", "nonsense")
	assert.ErrorContains(t, err, "no valid stops")
}

func TestDescribe_Markdown(t *testing.T) {
	out, err := execute(t, "describe", "--markdown", gradientManifest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Gradient\n"))
	assert.Contains(t, out, "| `gradient` | agradient | 0:ffffffff |")
}

func TestSimulate(t *testing.T) {
	out, err := execute(t, "simulate", gradientManifest,
		"--keys", "esc,f1", "--press", "esc", "--frames", "2", "--dt", "0.5",
		"--param", "gradient=0:00000000 100:ffffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "esc=7f7f7f7f")
	assert.Contains(t, out, "esc=ffffffff")
	assert.Contains(t, out, "f1=00000000")
}

func TestRun_Info(t *testing.T) {
	out, err := execute(t, "run", gradientManifest, "--ckb-info")
	require.NoError(t, err)
	assert.Contains(t, out, "param agradient gradient Gradient%3A  0%3Affffffff\n")
}

func TestRun_UsageExitCode(t *testing.T) {
	out, err := execute(t, "run", gradientManifest)
	var exit *exitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 255, exit.code)
	assert.Contains(t, out, "This program must be run from within ckb")
}

func TestSession_LifeCycle(t *testing.T) {
	dir := t.TempDir()

	// Record a session through the run command.
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader("begin keymap\nkeycount 1\nkey esc 0,0\nend keymap\nbegin params\nend params\nbegin run\nframe\nend run\n"))
	rootCmd.SetArgs([]string{"run", gradientManifest, "--ckb-run", "--snapshot", dir, "--session-id", "recorded"})
	require.NoError(t, rootCmd.Execute())

	ls, err := execute(t, "session", "ls", "--snapshot", dir)
	require.NoError(t, err)
	assert.Equal(t, "recorded\n", ls)

	inspect, err := execute(t, "session", "inspect", "recorded", "--snapshot", dir)
	require.NoError(t, err)
	assert.Contains(t, inspect, `"state": "ended"`)
	assert.Contains(t, inspect, `"effect": "Gradient"`)

	rm, err := execute(t, "session", "rm", "recorded", "--snapshot", dir)
	require.NoError(t, err)
	assert.Contains(t, rm, `Removed session "recorded"`)

	ls, err = execute(t, "session", "ls", "--snapshot", dir)
	require.NoError(t, err)
	assert.Equal(t, "No sessions found.\n", ls)
}
