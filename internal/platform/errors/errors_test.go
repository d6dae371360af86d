package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if ErrorCodeInvalidArgument.String() != "invalid_argument" {
		t.Fatalf("String = %q", ErrorCodeInvalidArgument.String())
	}
	if ErrorCode(77).String() != "code(77)" {
		t.Fatalf("String = %q", ErrorCode(77).String())
	}
}

func TestErrorChain(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	missing := New(ErrorCodeInvalidArgument, "Date et heure sont requises")
	if CodeOf(missing) != ErrorCodeInvalidArgument || HTTPStatus(missing) != http.StatusUnprocessableEntity {
		t.Fatalf("code/status mismatch for %v", missing)
	}

	cause := stderrs.New(`parsing time "25:00"`)
	wrapped := Wrapf(cause, ErrorCodeInvalidArgument, "heure invalide: %q", "25:00")
	if got := wrapped.Error(); got != `heure invalide: "25:00": parsing time "25:00"` {
		t.Fatalf("Error() = %q", got)
	}
	if Root(wrapped) != cause {
		t.Fatalf("Root did not reach the cause")
	}
	// wire keeps the cause private
	if w := WireFrom(wrapped); w.Message != `heure invalide: "25:00"` || w.Code != ErrorCodeInvalidArgument {
		t.Fatalf("WireFrom = %+v", w)
	}

	outer := fmt.Errorf("build schedule: %w", wrapped)
	if !IsCode(outer, ErrorCodeInvalidArgument) {
		t.Fatalf("IsCode lost through fmt wrap")
	}
	if e, ok := As(outer); !ok || e.Message() != `heure invalide: "25:00"` {
		t.Fatalf("As = %+v %v", e, ok)
	}
	if _, ok := As(cause); ok {
		t.Fatalf("As true for foreign error")
	}
}

func TestWithField(t *testing.T) {
	base := InvalidArgf("champ requis")
	named := WithField(base, "funeralTime")
	if e, _ := As(named); e.Field() != "funeralTime" {
		t.Fatalf("field = %q", e.Field())
	}
	if e, _ := As(base); e.Field() != "" {
		t.Fatalf("copy on write mutated original")
	}
	foreign := WithField(stderrs.New("boom"), "x")
	if e, ok := As(foreign); !ok || e.Code() != ErrorCodeUnknown || e.Field() != "x" {
		t.Fatalf("foreign wrap = %+v", e)
	}
	if WithField(nil, "x") != nil {
		t.Fatalf("nil should stay nil")
	}
	if w := WireFrom(named); w.Field != "funeralTime" {
		t.Fatalf("wire field = %q", w.Field)
	}
}

func TestSugar(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeInvalidArgument: InvalidArgf("a %d", 1),
		ErrorCodeValidation:      Validationf("b"),
		ErrorCodeJSON:            JSONErrf("c"),
		ErrorCodeNotFound:        NotFoundf("d"),
		ErrorCodeUnavailable:     Unavailablef("e"),
		ErrorCodePanic:           PanicErrf("f"),
	}
	for code, err := range cases {
		if CodeOf(err) != code {
			t.Fatalf("CodeOf(%v) = %v, want %v", err, CodeOf(err), code)
		}
	}
	if WireFrom(nil) != (Wire{}) {
		t.Fatalf("WireFrom(nil) not zero")
	}
	if w := WireFrom(stderrs.New("raw")); w.Code != ErrorCodeUnknown || w.Message != "raw" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}
}
