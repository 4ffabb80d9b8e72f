// Package viacep looks up Brazilian addresses by postal code through
// the public ViaCEP registry.
package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
)

const defaultBaseURL = "https://viacep.com.br"

var codeRe = regexp.MustCompile(`^\d{8}$`)

// ErrNotFound is returned when the registry has no address for the
// postal code.
var ErrNotFound = errors.New("postal code not found")

// Address holds the registry fields the form consumes.
type Address struct {
	Street       string
	Neighborhood string
	City         string
	State        string
}

// Error represents an unexpected HTTP response from the registry.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("viacep: %s (status %d)", e.Message, e.StatusCode)
}

// Client queries the ViaCEP JSON API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a ViaCEP client. The public API needs no
// credentials and the transport keeps its default timeouts.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// Lookup fetches the address registered for an 8-digit postal code.
// The code must already be bare digits.
func (c *Client) Lookup(ctx context.Context, code string) (*Address, error) {
	if !codeRe.MatchString(code) {
		return nil, fmt.Errorf("postal code must be 8 digits, got %q", code)
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/ws/%s/json/", c.baseURL, code))
	if err != nil {
		return nil, fmt.Errorf("lookup postal code: %w", err)
	}

	var wire addressResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("lookup postal code: unmarshal: %w", err)
	}

	if truthy(wire.Erro) {
		return nil, ErrNotFound
	}

	return &Address{
		Street:       wire.Logradouro,
		Neighborhood: wire.Bairro,
		City:         wire.Localidade,
		State:        wire.UF,
	}, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// truthy accepts the registry's historical encodings of the erro flag,
// boolean true as well as the string "true".
func truthy(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "false", `"false"`, "null":
		return false
	}
	return true
}

// json wire types for API responses

type addressResponse struct {
	Erro       json.RawMessage `json:"erro"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
}
