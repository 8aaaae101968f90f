package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "sitequery/internal/platform/errors"
	"sitequery/internal/platform/testkit"
)

type parsePayload struct {
	Query string `json:"query" validate:"required,min=1,max=500"`
}

func jsonReq(method, body string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestParseJSON_OK(t *testing.T) {
	got, err := ParseJSON[parsePayload](jsonReq(http.MethodPost, `{"query":"overdue invoices"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Query != "overdue invoices" {
		t.Fatalf("query = %q", got.Query)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	_, err := ParseJSON[parsePayload](jsonReq(http.MethodPost, ""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}

	// safe methods tolerate an empty body
	got, err := ParseJSON[parsePayload](jsonReq(http.MethodGet, ""))
	if err != nil || got.Query != "" {
		t.Fatalf("got %+v, err %v", got, err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	_, err := ParseJSON[parsePayload](jsonReq(http.MethodPost, `{"query":"x","extra":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	_, err := ParseJSON[parsePayload](jsonReq(http.MethodPost, `{"query":"x"}{"query":"y"}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseJSON_ValidationUsesJSONTagNames(t *testing.T) {
	_, err := ParseJSON[parsePayload](jsonReq(http.MethodPost, `{"query":""}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v", err)
	}

	if _, ok := perr.As(err); !ok {
		t.Fatalf("not a project error: %v", err)
	}
	wire := perr.WireFrom(err)
	testkit.MustEqual(t, wire.Field, "query")
}

func TestParseJSON_MaxLength(t *testing.T) {
	long := strings.Repeat("a", 501)
	_, err := ParseJSON[parsePayload](jsonReq(http.MethodPost, `{"query":"`+long+`"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v", err)
	}
	_, msg := ValidationFieldAndMessage(nil)
	if msg != "" {
		t.Fatalf("nil err message = %q", msg)
	}
}
