package grep

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError_Error_Formats(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NewError("read file"), "read file"},
		{"message and cause", NewError("read file").Wrap(io.EOF), "read file: EOF"},
		{"cause only", (&Error{}).Wrap(io.EOF), "EOF"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is_MatchesDerivedErrors(t *testing.T) {
	derived := ErrFileRead.With(slog.String("file", "a.txt")).Wrap(io.ErrUnexpectedEOF)

	if !errors.Is(derived, ErrFileRead) {
		t.Error("derived error should match its sentinel")
	}
	if !errors.Is(derived, io.ErrUnexpectedEOF) {
		t.Error("derived error should match its cause")
	}
	if errors.Is(derived, ErrUsage) {
		t.Error("derived error should not match another sentinel")
	}
	if errors.Is(&Error{}, &Error{}) {
		t.Error("errors without a message should not match")
	}
}

func TestError_With_DoesNotMutateSentinel(t *testing.T) {
	_ = ErrUsage.With(slog.Int("args", 1))

	if n := len(ErrUsage.LogValue().Group()); n != 1 {
		t.Errorf("sentinel gained attributes: %d", n)
	}
}

func TestError_LogValue_IncludesCauseAndAttrs(t *testing.T) {
	err := ErrFileRead.With(slog.String("file", "a.txt")).Wrap(io.EOF)

	got := map[string]string{}
	for _, a := range err.LogValue().Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{"error": "read file", "cause": "EOF", "file": "a.txt"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("LogValue()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
