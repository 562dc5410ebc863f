package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "chatexport/internal/platform/errors"
)

type lookupIn struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

func TestParseJSON_OK(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"Amy Li"}`))
	got, err := ParseJSON[lookupIn](r)
	if err != nil {
		t.Fatalf("ParseJSON err: %v", err)
	}
	if got.Name != "Amy Li" {
		t.Fatalf("Name = %q", got.Name)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(""))
	if _, err := ParseJSON[lookupIn](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty body should be a JSON error, got %v", err)
	}

	// safe methods tolerate empty bodies
	g := httptest.NewRequest("GET", "/x", strings.NewReader(""))
	if _, err := ParseJSON[lookupIn](g); err != nil {
		t.Fatalf("GET with empty body should pass, got %v", err)
	}
}

func TestParseJSON_BadJSONAndUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":`))
	if _, err := ParseJSON[lookupIn](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("malformed JSON should map to JSON error, got %v", err)
	}

	r2 := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"a","bogus":1}`))
	if _, err := ParseJSON[lookupIn](r2); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("unknown field should map to JSON error, got %v", err)
	}

	r3 := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"a"} trailing`))
	if _, err := ParseJSON[lookupIn](r3); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data should map to JSON error, got %v", err)
	}
}

func TestParseJSON_Validation(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":""}`))
	_, err := ParseJSON[lookupIn](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("missing name should be a validation error, got %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "name" {
		t.Fatalf("validation error should name the json field, got %v", err)
	}
}
