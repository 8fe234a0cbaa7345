package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/paml/pkg/core/config"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// resetFlags restores flag defaults; cobra keeps values between runs
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv(config.EnvConfig, "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	testChdir(t, t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))

	code := Execute()
	return result{stdout: out.String(), stderr: errOut.String(), code: code}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestParse_Tree(t *testing.T) {
	r := run(t, "{a 1 b [x]}", "parse", "-")

	if r.code != 0 {
		t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
	}
	expected := "{} 2 entries\n  a: 1 (number)\n  b: [] 1 item\n    [0] \"x\" (string)\n"
	if r.stdout != expected {
		t.Errorf("Expected %q, got %q", expected, r.stdout)
	}
}

func TestParse_Output(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"paml", "{\n  a [\n    1\n    2\n  ]\n}\n"},
		{"json", "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n"},
		{"yaml", "a:\n  - 1\n  - 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			r := run(t, "{a [1, 2]} # trailing comment", "parse", "-o", tt.output, "-")
			if r.code != 0 {
				t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
			}
			if r.stdout != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, r.stdout)
			}
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	r := run(t, "{a [1 2}", "parse", "-")

	if r.code != 2 {
		t.Errorf("Expected exit code 2, got %d", r.code)
	}
	if !strings.Contains(r.stderr, "<stdin>") {
		t.Errorf("Expected source in error, got %q", r.stderr)
	}
}

func TestParse_MissingFile(t *testing.T) {
	r := run(t, "", "parse", "/nonexistent/file.paml")
	if r.code != 5 {
		t.Errorf("Expected exit code 5, got %d (%q)", r.code, r.stderr)
	}
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.paml", "{a 1}")
	bad := writeFile(t, "bad.paml", "{a 1\na 2}")

	r := run(t, "", "check", good, bad)

	if r.code != 2 {
		t.Errorf("Expected exit code 2, got %d", r.code)
	}
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected two status lines, got %q", r.stdout)
	}
	if lines[0] != "ok   "+good {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "FAIL "+bad+":2:1: ") || !strings.HasSuffix(lines[1], "[DUPLICATE_KEY]") {
		t.Errorf("Unexpected second line %q", lines[1])
	}
}

func TestCheck_VerboseStats(t *testing.T) {
	r := run(t, "[1 [2]]", "check", "-v", "-")

	if r.code != 0 {
		t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "nodes=4 depth=2 list=2 number=2") {
		t.Errorf("Expected stats, got %q", r.stdout)
	}
}

func TestCheck_OtherFormats(t *testing.T) {
	path := writeFile(t, "dup.json", `{"a": 1, "a": 2}`)

	r := run(t, "", "check", path)
	if r.code != 2 {
		t.Errorf("Expected exit code 2 for duplicate JSON key, got %d", r.code)
	}
}

func TestCheck_Directory(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"a.paml":       "{a 1}",
		"sub/b.paml":   "[x y]",
		"sub/skip.txt": "not a document",
	} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	r := run(t, "", "check", dir)
	if r.code != 0 {
		t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
	}
	expected := "ok   " + filepath.Join(dir, "a.paml") + "\nok   " + filepath.Join(dir, "sub", "b.paml") + "\n"
	if r.stdout != expected {
		t.Errorf("Expected %q, got %q", expected, r.stdout)
	}
}

func TestFmt_Stdout(t *testing.T) {
	r := run(t, "{b 'x' # note\n a [1,2]}", "fmt", "--compact", "-")

	if r.code != 0 {
		t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
	}
	if r.stdout != "{b x a [1 2]}\n" {
		t.Errorf("Unexpected output %q", r.stdout)
	}
}

func TestFmt_CheckAndWrite(t *testing.T) {
	path := writeFile(t, "a.paml", "{a   1}")

	r := run(t, "", "fmt", "--check", path)
	if r.code != 1 {
		t.Errorf("Expected exit code 1 for unformatted file, got %d", r.code)
	}
	if strings.TrimSpace(r.stdout) != path {
		t.Errorf("Expected file name, got %q", r.stdout)
	}

	r = run(t, "", "fmt", "--write", path)
	if r.code != 0 {
		t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\n  a 1\n}\n" {
		t.Errorf("Unexpected file content %q", data)
	}

	r = run(t, "", "fmt", "--check", path)
	if r.code != 0 {
		t.Errorf("Expected formatted file to pass, got %d (%q)", r.code, r.stdout)
	}
}

func TestFmt_WriteStdinRejected(t *testing.T) {
	r := run(t, "1", "fmt", "--write", "-")
	if r.code != 1 {
		t.Errorf("Expected exit code 1, got %d", r.code)
	}
}

func TestConvert(t *testing.T) {
	path := writeFile(t, "in.json", `{"b": 1, "a": [true, "x y"]}`)

	r := run(t, "", "convert", path)
	if r.code != 0 {
		t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
	}
	if r.stdout != "{b 1 a [true \"x y\"]}\n" {
		t.Errorf("Unexpected output %q", r.stdout)
	}
}

func TestConvert_ToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	r := run(t, "{a 1}", "convert", "--to", "json", "-O", out, "-")
	if r.code != 0 {
		t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\"a\":1}\n" {
		t.Errorf("Unexpected file content %q", data)
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"toml needs map root", []string{"convert", "--to", "toml", "-"}, 3},
		{"unknown format", []string{"convert", "--to", "xml", "-"}, 1},
		{"bad log format", []string{"--log-format", "xml", "convert", "-"}, 1},
		{"missing config", []string{"--config", "/nonexistent/paml.toml", "convert", "-"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, "[1 2]", tt.args...)
			if r.code != tt.code {
				t.Errorf("Expected exit code %d, got %d (%q)", tt.code, r.code, r.stderr)
			}
		})
	}
}

func TestConfig_InputLimit(t *testing.T) {
	path := writeFile(t, "paml.toml", "[parser]\nmax_input_size = 4\n")

	r := run(t, "[1 2 3]", "--config", path, "parse", "-")
	if r.code != 2 {
		t.Errorf("Expected exit code 2, got %d (%q)", r.code, r.stderr)
	}
}

func TestVersion(t *testing.T) {
	r := run(t, "", "version", "--verbose")

	if r.code != 0 {
		t.Fatalf("exit code %d", r.code)
	}
	if !strings.HasPrefix(r.stdout, "paml ") || !strings.Contains(r.stdout, "parser") {
		t.Errorf("Unexpected version output %q", r.stdout)
	}
}

func TestVerboseLogging(t *testing.T) {
	r := run(t, "{a 1}", "--log-format", "json", "-v", "check", "-")

	if r.code != 0 {
		t.Fatalf("exit code %d", r.code)
	}
	if !strings.Contains(r.stderr, `"correlation_id"`) || !strings.Contains(r.stderr, `"component":"paml-parser"`) {
		t.Errorf("Expected debug JSON logs, got %q", r.stderr)
	}
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it on test cleanup.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
