package printer

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// TestRenderFunctions verifies that all render functions keep the original text.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
	}{
		{"Faint", Faint},
		{"Bold", Bold},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
		{"Info", Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function("test text")
			if !strings.Contains(result, "test text") {
				t.Errorf("%s() = %q, want it to contain the input", tt.name, result)
			}
		})
	}
}

func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string)
	}{
		{"PrintFaint", PrintFaint},
		{"PrintBold", PrintBold},
		{"PrintSuccess", PrintSuccess},
		{"PrintError", PrintError},
		{"PrintWarning", PrintWarning},
		{"PrintInfo", PrintInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStdout(t, func() { tt.function("test text") })

			if !strings.Contains(output, "test text") {
				t.Errorf("%s() output = %q, want it to contain the input", tt.name, output)
			}
			if !strings.HasSuffix(output, "\n") {
				t.Errorf("%s() output does not end with newline", tt.name)
			}
		})
	}
}

func TestQuietMode(t *testing.T) {
	SetQuiet(true)
	t.Cleanup(func() { SetQuiet(false) })

	silenced := []func(string){PrintFaint, PrintBold, PrintSuccess, PrintInfo}
	for _, fn := range silenced {
		if out := captureStdout(t, func() { fn("hidden") }); out != "" {
			t.Errorf("expected no output in quiet mode, got %q", out)
		}
	}

	for _, fn := range []func(string){PrintWarning, PrintError} {
		if out := captureStdout(t, func() { fn("shown") }); !strings.Contains(out, "shown") {
			t.Errorf("warnings and errors must print in quiet mode, got %q", out)
		}
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	if got := Success("plain"); got != "plain" {
		t.Errorf("Success() with no color = %q, want %q", got, "plain")
	}
}

func TestPrintNotice_UsesStderr(t *testing.T) {
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	stdout := captureStdout(t, func() { PrintNotice("side note") })

	w.Close()
	os.Stderr = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if stdout != "" {
		t.Errorf("PrintNotice wrote to stdout: %q", stdout)
	}
	if !strings.Contains(buf.String(), "side note") {
		t.Errorf("stderr = %q, want it to contain the notice", buf.String())
	}
}
