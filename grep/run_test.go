package grep

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/encoding"

	"github.com/ardnew/minigrep/log"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRun_Help_PrintsUsage(t *testing.T) {
	var buf bytes.Buffer

	// FilePath is ignored for help; it must not be opened.
	err := Run(context.Background(), Config{Help: true, FilePath: "/nonexistent"}, &buf)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := "Usage: minigrep [PATTERN] [FILE_PATH]\n" +
		"Search for a pattern in the given file\n" +
		"\n" +
		"Flags:\n" +
		"    -h, --help          display this help message\n" +
		"    -i, --ignore_case   ignore case distinctions in patterns\n" +
		"\n"

	if buf.String() != want {
		t.Errorf("Run() help output = %q, want %q", buf.String(), want)
	}
}

func TestRun_PrintsMatchesInOrder(t *testing.T) {
	path := writeFile(t, poem)

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "case sensitive",
			cfg:  Config{Query: "to", FilePath: path},
			want: "Are you nobody, too?\n" +
				"How dreary to be somebody!\n",
		},
		{
			name: "ignore case",
			cfg:  Config{Query: "to", FilePath: path, IgnoreCase: true},
			want: "Are you nobody, too?\n" +
				"How dreary to be somebody!\n" +
				"To tell your name the livelong day\n" +
				"To an admiring bog!\n",
		},
		{
			name: "no matches",
			cfg:  Config{Query: "monkeys", FilePath: path},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			if err := Run(context.Background(), tt.cfg, &buf); err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Run() output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRun_FileErrors(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "binary.dat")
	if err := os.WriteFile(invalid, []byte("ok\n\xff\xfe\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.txt")},
		{"empty path", ""},
		{"directory", dir},
		{"invalid utf-8", invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := Run(context.Background(), Config{Query: "ok", FilePath: tt.path}, &buf)
			if !errors.Is(err, ErrFileRead) {
				t.Fatalf("Run() error = %v, want %v", err, ErrFileRead)
			}
			if buf.Len() != 0 {
				t.Errorf("Run() wrote %q on error", buf.String())
			}
		})
	}
}

func TestRun_MissingFile_WrapsCause(t *testing.T) {
	err := Run(
		context.Background(),
		Config{Query: "x", FilePath: filepath.Join(t.TempDir(), "missing.txt")},
		&bytes.Buffer{},
	)

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Run() error = %v, want it to wrap os.ErrNotExist", err)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_WriteFailure_ReturnsWriteError(t *testing.T) {
	path := writeFile(t, poem)

	err := Run(context.Background(), Config{Query: "", FilePath: path}, failWriter{})
	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("Run() error = %v, want %v", err, ErrWriteOutput)
	}

	err = Run(context.Background(), Config{Help: true}, failWriter{})
	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("Run() help error = %v, want %v", err, ErrWriteOutput)
	}
}

func TestReadFile_ReturnsContent(t *testing.T) {
	content := "héllo\r\nwörld\n"
	path := writeFile(t, content)

	got, err := ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("ReadFile() = %q, want %q", got, content)
	}
}

func TestReadFile_InvalidUTF8_WrapsValidatorError(t *testing.T) {
	path := writeFile(t, "valid\n\xc3\x28\n")

	_, err := ReadFile(context.Background(), path)
	if !errors.Is(err, ErrFileRead) {
		t.Fatalf("ReadFile() error = %v, want %v", err, ErrFileRead)
	}
	if !errors.Is(err, encoding.ErrInvalidUTF8) {
		t.Errorf("ReadFile() error = %v, want it to wrap %v", err, encoding.ErrInvalidUTF8)
	}
}

func TestReadFile_DebugLevel_LogsDigest(t *testing.T) {
	content := "Rust:\nTrust me.\n"
	path := writeFile(t, content)

	tests := []struct {
		name  string
		level log.Level
		want  bool
	}{
		{"debug", log.LevelDebug, true},
		{"trace", log.LevelTrace, true},
		{"warn", log.LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			log.Config(log.WithOutput(&buf), log.WithLevel(tt.level), log.WithPretty(false))
			defer log.Config(log.WithDefaults(os.Stderr))

			if _, err := ReadFile(context.Background(), path); err != nil {
				t.Fatalf("ReadFile() unexpected error: %v", err)
			}

			digest := "xxh3=" + strconv.FormatUint(xxh3.HashString(content), 16)

			out := buf.String()
			if got := strings.Contains(out, digest); got != tt.want {
				t.Errorf("digest %q logged = %v, want %v; output %q", digest, got, tt.want, out)
			}
		})
	}
}
