package receitaws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testClient creates a client pointed at a test server.
func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient()
	c.baseURL = srv.URL
	return c
}

func TestLookup(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v1/cnpj/12345678000195" {
			t.Errorf("path = %s, want /v1/cnpj/12345678000195", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"nome": "ACME LTDA",
			"fantasia": "ACME",
			"cnpj": "12.345.678/0001-95"
		}`))
	})

	company, err := c.Lookup(context.Background(), "12345678000195")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if company.LegalName != "ACME LTDA" {
		t.Errorf("legal name = %q, want %q", company.LegalName, "ACME LTDA")
	}
}

func TestLookupRejected(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ERROR", "message": "CNPJ inválido"}`))
	})

	_, err := c.Lookup(context.Background(), "12345678000195")
	if err == nil {
		t.Fatal("expected error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if statusErr.Message != "CNPJ inválido" {
		t.Errorf("message = %q", statusErr.Message)
	}
}

func TestLookupServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Lookup(context.Background(), "12345678000195")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", apiErr.StatusCode)
	}
}

func TestLookupRejectsBadID(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	tests := []string{"", "123", "12.345.678/0001-95", "123456780001955"}

	for _, cnpj := range tests {
		if _, err := c.Lookup(context.Background(), cnpj); err == nil {
			t.Errorf("Lookup(%q) succeeded, want error", cnpj)
		}
	}
}

func TestStatusErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *StatusError
		want string
	}{
		{"with message", &StatusError{Message: "CNPJ inválido"}, "CNPJ inválido"},
		{"empty message", &StatusError{}, "lookup rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want substring %q", got, tt.want)
			}
		})
	}
}
