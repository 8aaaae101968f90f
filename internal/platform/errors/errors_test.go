package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestCodeAndStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		code   ErrorCode
		status int
	}{
		{NotFoundf("nope"), ErrorCodeNotFound, http.StatusNotFound},
		{InvalidArgf("bad"), ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{JSONErrf("bad json"), ErrorCodeJSON, http.StatusBadRequest},
		{New(ErrorCodeValidation, "invalid"), ErrorCodeValidation, http.StatusBadRequest},
		{Internalf("boom"), ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if CodeOf(tc.err) != tc.code {
			t.Fatalf("%v: code = %v, want %v", tc.err, CodeOf(tc.err), tc.code)
		}
		if HTTPStatus(tc.err) != tc.status {
			t.Fatalf("%v: status = %d, want %d", tc.err, HTTPStatus(tc.err), tc.status)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrs.New("root cause")
	err := Wrap(cause, ErrorCodeUnknown, "context")

	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped cause lost")
	}
	if Root(err) != cause {
		t.Fatalf("Root = %v", Root(err))
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(Newf(ErrorCodeValidation, "limit too big"))
	if w.Code != ErrorCodeValidation || w.Message != "limit too big" {
		t.Fatalf("got %+v", w)
	}

	// foreign errors map to unknown
	w = WireFrom(stderrs.New("plain"))
	if w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("got %+v", w)
	}

	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("nil error should give zero wire, got %+v", w)
	}
}

func TestWithField(t *testing.T) {
	err := WithField(New(ErrorCodeValidation, "bad"), "limit")
	e, ok := As(err)
	if !ok || e.Field() != "limit" {
		t.Fatalf("got %+v", err)
	}
}
