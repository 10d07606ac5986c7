package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/numsys-go/numsys/internal/errors"
)

func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{3 * time.Second, "3s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	short := "12345"
	if got := FormatValue(short, false); got != short {
		t.Errorf("FormatValue(short) = %q, want %q", got, short)
	}

	long := strings.Repeat("9", 150)
	got := FormatValue(long, false)
	if !strings.Contains(got, "...") || !strings.Contains(got, "(150 digits)") {
		t.Errorf("FormatValue(long) = %q, want truncated form", got)
	}
	if len(got) >= len(long) {
		t.Errorf("truncated form is not shorter than the input")
	}

	if got := FormatValue(long, true); got != long {
		t.Errorf("verbose FormatValue should not truncate")
	}
}

func TestDisplayCalcResults(t *testing.T) {
	var buf bytes.Buffer
	DisplayCalcResults(&buf, []CalcResult{
		{System: "binary", Value: "56088", Duration: time.Millisecond},
		{System: "factorial", Err: errors.New("boom")},
	}, false)

	out := buf.String()
	if !strings.Contains(out, "binary") || !strings.Contains(out, "56088") {
		t.Errorf("missing successful result line: %q", out)
	}
	if !strings.Contains(out, "factorial") || !strings.Contains(out, "boom") {
		t.Errorf("missing failed result line: %q", out)
	}
}

func TestDisplayQuietResult(t *testing.T) {
	var buf bytes.Buffer
	DisplayQuietResult(&buf, "56088")
	if buf.String() != "56088\n" {
		t.Errorf("quiet output = %q, want %q", buf.String(), "56088\n")
	}
}

func TestDisplayErrorExitCodes(t *testing.T) {
	var buf bytes.Buffer
	if code := DisplayError(&buf, errors.New("plain")); code != apperrors.ExitErrorGeneric {
		t.Errorf("generic error exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
}

type fakeSpinner struct {
	started, stopped bool
	suffix           string
}

func (f *fakeSpinner) Start()                    { f.started = true }
func (f *fakeSpinner) Stop()                     { f.stopped = true }
func (f *fakeSpinner) UpdateSuffix(suffix string) { f.suffix = suffix }

func TestWithSpinner(t *testing.T) {
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(out io.Writer) Spinner { return fake }
	defer func() { newSpinner = orig }()

	ran := false
	err := WithSpinner(&bytes.Buffer{}, "working", func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithSpinner returned error: %v", err)
	}
	if !ran || !fake.started || !fake.stopped {
		t.Errorf("spinner lifecycle: ran=%v started=%v stopped=%v", ran, fake.started, fake.stopped)
	}
	if !strings.Contains(fake.suffix, "working") {
		t.Errorf("suffix = %q, want to contain %q", fake.suffix, "working")
	}
}
