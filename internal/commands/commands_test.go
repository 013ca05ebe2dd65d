package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/warbler/config"
	"github.com/simonhull/firebird-suite/warbler/input"
	"github.com/simonhull/firebird-suite/warbler/logger"
	"github.com/simonhull/firebird-suite/warbler/output"
	"github.com/simonhull/firebird-suite/warbler/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with stdin set to the given lines and returns
// what was written to stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	prev := logger.Default()
	t.Cleanup(func() {
		logger.SetDefault(prev)
		output.SetVerbose(false)
	})

	var stdout, stderr bytes.Buffer
	cmd := All()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr error
	}{
		{name: "yes", stdin: "y\n", args: []string{"confirm", "Go?"}, want: "yes\n"},
		{name: "no", stdin: "NO\n", args: []string{"confirm", "Go?"}, want: "no\n", wantErr: ErrDeclined},
		{name: "default yes", stdin: "\n", args: []string{"confirm", "Go?", "--default"}, want: "yes\n"},
		{name: "default no", stdin: "\n", args: []string{"confirm", "Go?"}, want: "no\n", wantErr: ErrDeclined},
		{name: "retries", stdin: "maybe\nyes\n", args: []string{"confirm", "Go?"}, want: "yes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.stdin, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, stdout)
			assert.Contains(t, stderr, "Go?")
		})
	}
}

func TestConfirm_RetryMessageOnStderr(t *testing.T) {
	stdout, stderr, err := run(t, "maybe\nn\n", "confirm", "Go?")

	assert.ErrorIs(t, err, ErrDeclined)
	assert.Equal(t, "no\n", stdout)
	assert.Contains(t, stderr, "Please answer yes or no.")
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "plain", stdin: "  hello  \n", args: []string{"ask", "Name"}, want: "hello\n"},
		{name: "default", stdin: "\n", args: []string{"ask", "Port", "--default", "8080"}, want: "8080\n"},
		{name: "required retries", stdin: "\nwarbler\n", args: []string{"ask", "Name", "--required"}, want: "warbler\n"},
		{name: "integer retries", stdin: "12a\n42\n", args: []string{"ask", "Port", "--integer"}, want: "42\n"},
		{name: "float", stdin: "3.5\n", args: []string{"ask", "Ratio", "--float"}, want: "3.5\n"},
		{name: "pattern", stdin: "Prod\nprod\n", args: []string{"ask", "Env", "--pattern", "^[a-z]+$"}, want: "prod\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestAsk_InvalidPattern(t *testing.T) {
	_, _, err := run(t, "", "ask", "Env", "--pattern", "[")
	assert.Error(t, err)
}

func TestAsk_RulesAreExclusive(t *testing.T) {
	_, _, err := run(t, "1\n", "ask", "N", "--integer", "--required")
	assert.Error(t, err)
}

func TestAsk_TooManyAttempts(t *testing.T) {
	stdin := strings.Repeat("x\n", input.DefaultMaxAttempts)
	stdout, _, err := run(t, stdin, "ask", "N", "--integer")

	assert.ErrorIs(t, err, input.ErrTooManyAttempts)
	assert.Empty(t, stdout)
}

func TestAsk_EndOfInput(t *testing.T) {
	_, _, err := run(t, "", "ask", "Name")
	assert.Error(t, err)
}

func TestSecret_RequiresTerminal(t *testing.T) {
	stdout, _, err := run(t, "hunter2\n", "secret", "Password")

	assert.ErrorIs(t, err, terminal.ErrEchoUnsupported)
	assert.ErrorContains(t, err, "stdin is not one")
	assert.Empty(t, stdout)
}

func TestChoose(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "by value", stdin: "sqlite\n", args: []string{"choose", "DB", "postgres", "sqlite"}, want: "sqlite\n"},
		{name: "by key", stdin: "0\n", args: []string{"choose", "DB", "postgres", "sqlite"}, want: "postgres\n"},
		{name: "default", stdin: "\n", args: []string{"choose", "DB", "postgres", "sqlite", "--default", "1"}, want: "sqlite\n"},
		{name: "multiple", stdin: "auth, 2\n", args: []string{"choose", "Features", "auth", "jobs", "realtime", "--multiple"}, want: "auth\nrealtime\n"},
		{name: "multiple defaults", stdin: "\n", args: []string{"choose", "Features", "auth", "jobs", "--multiple", "--default", "0,1"}, want: "auth\njobs\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Contains(t, stderr, "[0] ")
		})
	}
}

func TestChoose_CustomError(t *testing.T) {
	_, stderr, err := run(t, "mysql\npostgres\n", "choose", "DB", "postgres", "--error", "%s is not supported")

	require.NoError(t, err)
	assert.Contains(t, stderr, "mysql is not supported")
}

func TestChoose_SeveralDefaultsNeedMultiple(t *testing.T) {
	_, _, err := run(t, "\n", "choose", "DB", "a", "b", "--default", "0,1")
	assert.Error(t, err)
}

func TestChoose_DefaultOutOfRange(t *testing.T) {
	_, _, err := run(t, "\n", "choose", "DB", "a", "b", "--default", "5")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	stdout, stderr, err := run(t, "a\nexample.com\na\nlocalhost\n1\nd\nc\n", "list", "Hosts", "--item-prompt", "Host")

	require.NoError(t, err)
	assert.Equal(t, "localhost\n", stdout)
	assert.Contains(t, stderr, "Hosts")
	assert.Contains(t, stderr, "  1. example.com")
}

func TestList_FromFileAsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yml")
	require.NoError(t, os.WriteFile(path, []byte("- api\n- web\n"), 0644))

	stdout, _, err := run(t, "2\ne\nworker\nc\n", "list", "Tags", "--from", path, "--format", "yaml")

	require.NoError(t, err)
	assert.Equal(t, "- api\n- worker\n", stdout)
}

func TestList_EmptyYAML(t *testing.T) {
	stdout, _, err := run(t, "c\n", "list", "Tags", "--format", "yaml")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestList_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "c\n", "list", "Tags", "--format", "json")
	assert.Error(t, err)
}

func TestList_BadSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yml")
	require.NoError(t, os.WriteFile(path, []byte("key: value\n"), 0644))

	_, _, err := run(t, "c\n", "list", "Tags", "--from", path)
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	cfg := config.Default()
	cfg.MaxAttempts = 1
	require.NoError(t, config.Write(path, cfg))

	_, _, err := run(t, "x\n1\n", "ask", "N", "--integer", "--config", path)
	assert.ErrorIs(t, err, input.ErrTooManyAttempts)
}

func TestConfigFlag_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("max_attempts: 0\n"), 0644))

	_, _, err := run(t, "x\n", "ask", "N", "--config", path)
	assert.Error(t, err)
}

func TestVerbose_LogsRejections(t *testing.T) {
	_, stderr, err := run(t, "x\n1\n", "ask", "N", "--integer", "--verbose")

	require.NoError(t, err)
	assert.Contains(t, stderr, "answer rejected")
	assert.Contains(t, stderr, "Loaded config")
	assert.Contains(t, stderr, "console ready")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warbler.yml")

	stdout, _, err := run(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created "+path)
	assert.Contains(t, stdout, "WARBLER_MAX_ATTEMPTS=3")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = run(t, "", "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, "", "config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestConfigInit_DefaultPath(t *testing.T) {
	_, _, err := run(t, "", "config", "init")
	require.NoError(t, err)

	_, err = os.Stat(config.FileName)
	assert.NoError(t, err)
}

func TestConfigInit_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warbler.toml")

	_, _, err := run(t, "", "config", "init", path)
	require.NoError(t, err)

	stdout, _, err := run(t, "\n", "ask", "Port", "--default", "8080", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "8080\n", stdout)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
