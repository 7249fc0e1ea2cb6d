package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/pkg/version"
)

const poem = `I'm nobody! Who are you?
Are you nobody, too?
Then there's a pair of us - don't tell!
They'd banish us, you know.

How dreary to be somebody!
How public, like a frog
To tell your name the livelong day
To an admiring bog!
`

// isolateEnv clears variables that influence a run.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MINIGREP_LOG_LEVEL", "")
	t.Setenv("MINIGREP_LOG_FILE", "")
	t.Setenv("MINIGREP_COLOR", "")
	unsetEnv(t, "CASE_INSENSITIVE")
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if v, ok := os.LookupEnv(key); ok {
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() { _ = os.Setenv(key, v) })
	}
}

func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := execute(NewRootCmd(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_CaseSensitiveSearch(t *testing.T) {
	// Given: a poem file and no CASE_INSENSITIVE
	isolateEnv(t)
	path := writePoem(t)

	// When: searching for "to"
	stdout, stderr, err := run(t, "to", path)

	// Then: banner, contents, header and matches appear in order
	require.NoError(t, err)
	assert.Empty(t, stderr)

	expected := "Searching for the query: to\n" +
		"In the file: " + path + "\n" +
		"The file contains: \n" + poem + "\n" +
		"Results:\n" +
		"Are you nobody, too?\n" +
		"How dreary to be somebody!\n"
	assert.Equal(t, expected, stdout)
}

func TestRootCmd_CaseInsensitiveFromEnv(t *testing.T) {
	// Given: CASE_INSENSITIVE present with an empty value
	isolateEnv(t)
	t.Setenv("CASE_INSENSITIVE", "")
	path := writePoem(t)

	// When: searching for "to" in quiet mode
	stdout, _, err := run(t, "-q", "to", path)

	// Then: "To" lines match as well, with original casing
	require.NoError(t, err)
	assert.Equal(t, "Are you nobody, too?\n"+
		"How dreary to be somebody!\n"+
		"To tell your name the livelong day\n"+
		"To an admiring bog!\n", stdout)
}

func TestRootCmd_NoMatchesIsSuccess(t *testing.T) {
	isolateEnv(t)
	path := writePoem(t)

	stdout, stderr, err := run(t, "zzz", path)

	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.True(t, strings.HasSuffix(stdout, "Results:\n"))
}

func TestRootCmd_Count(t *testing.T) {
	isolateEnv(t)
	path := writePoem(t)

	stdout, _, err := run(t, "-q", "-c", "you", path)

	require.NoError(t, err)
	assert.Equal(t, "4\n", stdout)
}

func TestRootCmd_ExtraArgumentsIgnored(t *testing.T) {
	isolateEnv(t)
	path := writePoem(t)

	stdout, _, err := run(t, "-q", "frog", path, "ignored", "also-ignored")

	require.NoError(t, err)
	assert.Equal(t, "How public, like a frog\n", stdout)
}

func TestRootCmd_TrailingFlagLikeArgumentsIgnored(t *testing.T) {
	tests := []struct {
		name  string
		extra []string
	}{
		{"long flag", []string{"--extra"}},
		{"known flag after file", []string{"--count"}},
		{"short flags", []string{"-x", "-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: dash-led arguments after the file name
			isolateEnv(t)
			path := writePoem(t)
			args := append([]string{"-q", "frog", path}, tt.extra...)

			// When: running
			stdout, stderr, err := run(t, args...)

			// Then: they are ignored like any other extra argument
			require.NoError(t, err)
			assert.Empty(t, stderr)
			assert.Equal(t, "How public, like a frog\n", stdout)
		})
	}
}

func TestRootCmd_DashLedQuery(t *testing.T) {
	// Given: a file mentioning "-v"
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "flags.txt")
	require.NoError(t, os.WriteFile(path, []byte("use -v for verbose\nplain\n"), 0o644))

	// When: "-v" is the first argument
	stdout, stderr, err := run(t, "-v", path)

	// Then: it is searched for rather than parsed as a flag
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Searching for the query: -v\n")
	assert.True(t, strings.HasSuffix(stdout, "Results:\nuse -v for verbose\n"))
}

func TestRootCmd_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "no arguments",
			args:       nil,
			wantStderr: "Problem parsing arguments: No query string was found in the inputs\n",
		},
		{
			name:       "query only",
			args:       []string{"frog"},
			wantStderr: "Problem parsing arguments: No file name was found in the inputs\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)

			stdout, stderr, err := run(t, tt.args...)

			require.Error(t, err)
			assert.True(t, errors.IsConfig(err))
			assert.Empty(t, stdout, "nothing is printed before arguments are valid")
			assert.Equal(t, tt.wantStderr, stderr)
		})
	}
}

func TestRootCmd_MissingFileIsApplicationError(t *testing.T) {
	// Given: a path that does not exist
	isolateEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	// When: searching it
	stdout, stderr, err := run(t, "frog", missing)

	// Then: the runtime error domain is reported after the banner
	require.Error(t, err)
	assert.Equal(t, errors.KindIOFailure, errors.GetKind(err))
	assert.True(t, strings.HasPrefix(stderr, "Application error: "))
	assert.Contains(t, stderr, "missing.txt")
	assert.Contains(t, stdout, "Searching for the query: frog")
	assert.NotContains(t, stdout, "Results:")
}

func TestRootCmd_InvalidFlagValueIsConfigError(t *testing.T) {
	isolateEnv(t)

	_, stderr, err := run(t, "--quiet=maybe", "frog", "poem.txt")

	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidFlag, errors.GetKind(err))
	assert.True(t, strings.HasPrefix(stderr, "Problem parsing arguments: "))
}

func TestRootCmd_UnknownLeadingFlagIsAQuery(t *testing.T) {
	// Given: an unknown long flag in query position
	isolateEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	// When: running
	stdout, _, err := run(t, "--bogus", missing)

	// Then: it is the query and the file is read
	require.Error(t, err)
	assert.Equal(t, errors.KindIOFailure, errors.GetKind(err))
	assert.Contains(t, stdout, "Searching for the query: --bogus\n")
}

func TestSeparatePositional(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no flags", []string{"frog", "poem.txt"}, []string{"--", "frog", "poem.txt"}},
		{"leading flags", []string{"-q", "--count", "frog", "poem.txt"}, []string{"-q", "--count", "--", "frog", "poem.txt"}},
		{"grouped shorthands", []string{"-qc", "frog"}, []string{"-qc", "--", "frog"}},
		{"flag with value", []string{"--quiet=false", "frog"}, []string{"--quiet=false", "--", "frog"}},
		{"help", []string{"--help"}, []string{"--help"}},
		{"unknown shorthand", []string{"-v", "poem.txt"}, []string{"--", "-v", "poem.txt"}},
		{"partly unknown group", []string{"-qv", "poem.txt"}, []string{"--", "-qv", "poem.txt"}},
		{"non-ascii shorthand", []string{"-é", "poem.txt"}, []string{"--", "-é", "poem.txt"}},
		{"single dash", []string{"-", "poem.txt"}, []string{"--", "-", "poem.txt"}},
		{"explicit separator", []string{"-q", "--", "-q", "notes.txt"}, []string{"-q", "--", "-q", "notes.txt"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, separatePositional(NewRootCmd(), tt.args))
		})
	}
}

func TestRootCmd_DashQueryAfterSeparator(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "flags.txt")
	require.NoError(t, os.WriteFile(path, []byte("use -v for verbose\nplain\n"), 0o644))

	stdout, _, err := run(t, "-q", "--", "-v", path)

	require.NoError(t, err)
	assert.Equal(t, "use -v for verbose\n", stdout)
}

func TestRootCmd_DebugWritesLogFile(t *testing.T) {
	// Given: a log file override
	isolateEnv(t)
	logPath := filepath.Join(t.TempDir(), "logs", "debug.log")
	t.Setenv("MINIGREP_LOG_FILE", logPath)
	path := writePoem(t)

	// When: running with --debug
	_, _, err := run(t, "--debug", "-q", "frog", path)

	// Then: structured records land in the file
	require.NoError(t, err)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"search_started"`)
	assert.Contains(t, string(data), `"msg":"search_complete"`)
	assert.Contains(t, string(data), `"mode":"sensitive"`)
	assert.Contains(t, string(data), `"build":{"version":"`+version.Version+`"`)
}

func TestRootCmd_DebugErrorsAreVerbose(t *testing.T) {
	// Given: a missing file and --debug
	isolateEnv(t)
	t.Setenv("MINIGREP_LOG_FILE", filepath.Join(t.TempDir(), "debug.log"))
	missing := filepath.Join(t.TempDir(), "missing.txt")

	// When: searching it
	_, stderr, err := run(t, "--debug", "-q", "frog", missing)

	// Then: the usual line comes first, followed by details and the code
	require.Error(t, err)
	lines := strings.Split(strings.TrimSuffix(stderr, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, errors.FormatForCLI(err), lines[0])
	assert.Contains(t, stderr, "  path: "+missing+"\n")
	assert.Contains(t, stderr, "  Code: "+errors.ErrCodeFileNotFound+"\n")
}

func TestRootCmd_ErrorsAreOneLineWithoutDebug(t *testing.T) {
	isolateEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, stderr, err := run(t, "-q", "frog", missing)

	require.Error(t, err)
	assert.Equal(t, errors.FormatForCLI(err)+"\n", stderr)
}

func TestRootCmd_InvalidSettingsIsConfigError(t *testing.T) {
	isolateEnv(t)
	t.Setenv("MINIGREP_COLOR", "rainbow")
	path := writePoem(t)

	_, stderr, err := run(t, "frog", path)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSettingsInvalid, errors.GetCode(err))
	assert.True(t, strings.HasPrefix(stderr, "Problem parsing arguments: "))
}
