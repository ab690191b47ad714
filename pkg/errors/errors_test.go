package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestTintErrorString(t *testing.T) {
	err := &TintError{
		Op:   "palette.Load",
		Kind: KindPalette,
		Err:  errors.New("no such file"),
	}
	got := err.Error()
	if !strings.Contains(got, "palette.Load") || !strings.Contains(got, "[palette]") {
		t.Errorf("error string %q should contain op and kind", got)
	}
}

func TestTintErrorWithPath(t *testing.T) {
	err := &TintError{
		Op:   "palette.Load",
		Kind: KindPalette,
		Path: "testdata/tint.yaml",
		Err:  errors.New("bad entry"),
	}
	got := err.Error()
	want := "path=testdata/tint.yaml"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestTintErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &TintError{Op: "op", Kind: KindParse, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindValidation, "validation"},
		{KindParse, "parse"},
		{KindPalette, "palette"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

type recordingHandler struct {
	errs []*TintError
}

func (h *recordingHandler) HandleError(err *TintError) {
	h.errs = append(h.errs, err)
}

func TestSetHandlerAndReport(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report(&TintError{Op: "test.op", Kind: KindValidation, Err: errors.New("boom")})
	if len(rec.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(rec.errs))
	}
	if rec.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp the error time")
	}

	// nil errors are ignored
	Report(nil)
	if len(rec.errs) != 1 {
		t.Error("nil error should not reach the handler")
	}
}

func TestWrapReportsAndReturns(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	inner := errors.New("inner")
	err := Wrap("convert.Parse", KindParse, inner)
	if err == nil || err.Err != inner {
		t.Fatal("Wrap should return the wrapped error")
	}
	if len(rec.errs) != 1 {
		t.Errorf("Wrap should report once, got %d", len(rec.errs))
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}
