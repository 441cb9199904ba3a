package diagnostics

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDiagnosticErrorMessageUnchanged(t *testing.T) {
	d := NewError(ErrT001, "Undeclared variable %s.", "y")
	if d.Error() != "Undeclared variable y." {
		t.Errorf("Error() = %q", d.Error())
	}
	if d.String() != "error[T001]: Undeclared variable y." {
		t.Errorf("String() = %q", d.String())
	}
	d.File = "main.ende.yaml"
	if !strings.HasPrefix(d.String(), "main.ende.yaml: ") {
		t.Errorf("String() should start with the file, got %q", d.String())
	}
}

func TestArgumentError(t *testing.T) {
	d := NewArgumentError(2, "Expect term of type %s, found term of type %s.", "I32", "Bool")
	if d.Code != ErrT004 || d.Arg != 2 {
		t.Errorf("got code %s arg %d", d.Code, d.Arg)
	}
}

func TestMessages(t *testing.T) {
	errs := []*DiagnosticError{
		NewError(ErrT004, "first"),
		NewError(ErrT004, "second"),
	}
	if got := Messages(errs); !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("Messages() = %v", got)
	}
}

func TestEmitterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.EmitAll(WithFile([]*DiagnosticError{NewError(ErrT006, "branches differ")}, "p.ende.yaml"))

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("a buffer is not a terminal; output must not be coloured: %q", out)
	}
	if !strings.Contains(out, "p.ende.yaml: error[T006]: branches differ") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Checking failed with 1 error(s)") {
		t.Errorf("missing summary: %q", out)
	}
}

func TestEmitterForcedColor(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.SetColor(true)
	e.Emit(NewError(ErrT002, "x is called as a function, but it has type I32"))
	if !strings.Contains(buf.String(), colorRed) {
		t.Errorf("expected coloured output, got %q", buf.String())
	}
}

func TestCodeName(t *testing.T) {
	if ErrT003.Name() != "ArityMismatch" {
		t.Errorf("ErrT003.Name() = %q", ErrT003.Name())
	}
	if ErrorCode("X999").Name() != "X999" {
		t.Errorf("unknown codes should render as themselves")
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("bad indentation")
	d := Wrap(ErrD001, cause, "main.ende.yaml")
	if d.Message != "main.ende.yaml: bad indentation" {
		t.Errorf("Message = %q", d.Message)
	}
	if !errors.Is(d, cause) {
		t.Errorf("Wrap should unwrap to its cause")
	}
	if Wrap(ErrD001, cause, "").Message != "bad indentation" {
		t.Errorf("empty prefix should leave the message alone")
	}
}
