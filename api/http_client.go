// api/http_client.go
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
	// noRedirect shares the same timeout but stops at the first redirect,
	// for endpoints whose answer is the Location header itself.
	noRedirect *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	timeout := 30 * time.Second // Set a timeout for requests
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		noRedirect: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Request makes an HTTP request to the API and decodes the response
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New("unexpected status code: " + res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}

// Get makes a GET request with query parameters and decodes the response.
func (c *HTTPClient) Get(endpoint string, query url.Values, response interface{}) error {
	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target = target + "?" + query.Encode()
	}
	req, err := http.NewRequest("GET", target, nil)
	if err != nil {
		return err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New("unexpected status code: " + res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}

// ResolveRedirect issues a GET without following redirects and returns the
// Location header. Used for photo-reference resolution where the API answers
// with a redirect to the actual image URL.
func (c *HTTPClient) ResolveRedirect(endpoint string, query url.Values) (string, error) {
	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target = target + "?" + query.Encode()
	}

	res, err := c.noRedirect.Get(target)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 300 || res.StatusCode >= 400 {
		return "", errors.New("expected redirect, got: " + res.Status)
	}

	loc := res.Header.Get("Location")
	if loc == "" {
		return "", errors.New("redirect response missing Location header")
	}
	return loc, nil
}
