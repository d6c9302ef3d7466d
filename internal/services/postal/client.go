// Package postal resolves 7-digit Japanese postal codes to addresses
// through a zipcloud-style lookup service.
package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"aircon-subsidy-engine/internal/models"
)

// Client calls the postal lookup collaborator.
type Client struct {
	apiURL string
	client *http.Client
}

// NewClient creates a postal lookup client for the given endpoint.
func NewClient(apiURL string) *Client {
	return &Client{
		apiURL: apiURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type lookupResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Results []struct {
		Address1 string `json:"address1"`
		Address2 string `json:"address2"`
		Address3 string `json:"address3"`
	} `json:"results"`
}

// Lookup resolves a 7-digit zip code (no hyphen) to the concatenation
// prefecture + city + town. An empty or absent results array is a
// defined ErrLookupService, not a crash.
func (c *Client) Lookup(ctx context.Context, zipCode string) (string, error) {
	if !isSevenDigits(zipCode) {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidZipCode, zipCode)
	}

	reqURL := fmt.Sprintf("%s?zipcode=%s", c.apiURL, url.QueryEscape(zipCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrLookupService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: postal API returned status %d", models.ErrLookupService, resp.StatusCode)
	}

	var result lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode postal API response: %v", models.ErrLookupService, err)
	}

	if len(result.Results) == 0 {
		return "", fmt.Errorf("%w: no address found for zip code %s", models.ErrLookupService, zipCode)
	}

	first := result.Results[0]
	return first.Address1 + first.Address2 + first.Address3, nil
}

func isSevenDigits(s string) bool {
	if len(s) != 7 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
