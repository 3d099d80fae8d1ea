package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	// Mock server setup
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-endpoint" {
			t.Errorf("Expected endpoint '/test-endpoint', got '%s'", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	// Act
	err := client.Request("GET", "/test-endpoint", nil, nil, &response)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response["message"] != "success" {
		t.Errorf("Expected response message to be 'success', got '%s'", response["message"])
	}
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	// Act
	err := client.Request("POST", "/test-endpoint", nil, map[string]string{"key": "value"}, &response)

	// Assert
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}

	expectedError := "unexpected status code: 400 Bad Request"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
	}
}

func TestHTTPClient_Get_QueryParams(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "museums Lisbon" {
			t.Errorf("Expected query 'museums Lisbon', got '%s'", got)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	query := url.Values{}
	query.Set("query", "museums Lisbon")

	var response map[string]string
	if err := client.Get("/textsearch/json", query, &response); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response["status"] != "OK" {
		t.Errorf("Expected status OK, got '%s'", response["status"])
	}
}

func TestHTTPClient_ResolveRedirect(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://img.example.com/photo.jpg")
		w.WriteHeader(http.StatusFound)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)

	loc, err := client.ResolveRedirect("/photo", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loc != "https://img.example.com/photo.jpg" {
		t.Errorf("Expected redirect location, got '%s'", loc)
	}
}

func TestHTTPClient_ResolveRedirect_ReusesClient(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://img.example.com/"+r.URL.Query().Get("ref"))
		w.WriteHeader(http.StatusFound)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	if client.noRedirect == nil {
		t.Fatal("Expected the redirect-stopping client to be built at construction")
	}
	if client.noRedirect.Timeout != client.HTTPClient.Timeout {
		t.Errorf("Expected matching timeouts, got %v and %v", client.noRedirect.Timeout, client.HTTPClient.Timeout)
	}

	// Repeated calls go through the same underlying client.
	for _, ref := range []string{"a.jpg", "b.jpg"} {
		query := url.Values{}
		query.Set("ref", ref)
		loc, err := client.ResolveRedirect("/photo", query)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if loc != "https://img.example.com/"+ref {
			t.Errorf("Expected redirect location for %s, got '%s'", ref, loc)
		}
	}
}

func TestHTTPClient_ResolveRedirect_NoRedirect(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)

	if _, err := client.ResolveRedirect("/photo", nil); err == nil {
		t.Fatal("Expected an error for non-redirect response, got nil")
	}
}
