// Package receitaws looks up Brazilian company registrations by CNPJ
// through the public ReceitaWS registry.
package receitaws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
)

const defaultBaseURL = "https://www.receitaws.com.br"

var cnpjRe = regexp.MustCompile(`^\d{14}$`)

// Company holds the registry fields the form consumes.
type Company struct {
	LegalName string
}

// StatusError is returned when the registry answers the request but
// rejects the CNPJ, for example when it is unknown or malformed.
type StatusError struct {
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "receitaws: lookup rejected"
	}
	return "receitaws: " + e.Message
}

// Error represents an unexpected HTTP response from the registry.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("receitaws: %s (status %d)", e.Message, e.StatusCode)
}

// Client queries the ReceitaWS JSON API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a ReceitaWS client. The public API needs no
// credentials and the transport keeps its default timeouts.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// Lookup fetches the company registered under a 14-digit CNPJ. The id
// must already be bare digits.
func (c *Client) Lookup(ctx context.Context, cnpj string) (*Company, error) {
	if !cnpjRe.MatchString(cnpj) {
		return nil, fmt.Errorf("cnpj must be 14 digits, got %q", cnpj)
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/v1/cnpj/%s", c.baseURL, cnpj))
	if err != nil {
		return nil, fmt.Errorf("lookup cnpj: %w", err)
	}

	var wire companyResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("lookup cnpj: unmarshal: %w", err)
	}

	if wire.Status != "OK" {
		return nil, &StatusError{Message: wire.Message}
	}

	return &Company{LegalName: wire.Nome}, nil
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

// json wire types for API responses

type companyResponse struct {
	Status  string `json:"status"`
	Nome    string `json:"nome"`
	Message string `json:"message"`
}
