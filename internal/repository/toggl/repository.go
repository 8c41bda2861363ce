package toggl

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/robert-osoelectronics/toggl-reports/internal/errors"
	"github.com/robert-osoelectronics/toggl-reports/internal/logging"
)

// Repository defines the read operations this program issues against the
// Toggl Track API. All calls are synchronous request/response and carry the
// same bearer credential.
type Repository interface {
	// GetCurrentUser fetches the authenticated user's profile, including
	// the default workspace ID.
	GetCurrentUser(ctx context.Context) (*Me, error)
	// ListClients fetches the clients of a workspace in API order.
	ListClients(ctx context.Context, workspaceID int64) ([]Client, error)
	// SearchTimeEntries runs a time-entry search against the reports API.
	SearchTimeEntries(ctx context.Context, workspaceID int64, query SearchQuery) ([]SearchResult, error)
}

type repository struct {
	httpClient     *http.Client
	baseURL        string
	reportsBaseURL string
	authHeader     string
}

// New creates a Repository for the given API token. The base URLs point at
// the v9 core API and the v3 reports API respectively; tests substitute
// local servers.
func New(apiToken, baseURL, reportsBaseURL string, timeout time.Duration) Repository {
	return &repository{
		httpClient:     &http.Client{Timeout: timeout},
		baseURL:        baseURL,
		reportsBaseURL: reportsBaseURL,
		authHeader:     AuthorizationHeader(apiToken),
	}
}

// AuthorizationHeader builds the Basic auth header value the Toggl API
// expects: base64 of "<token>:api_token".
func AuthorizationHeader(apiToken string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(apiToken + ":api_token"))
	return "Basic " + encoded
}

func (r *repository) GetCurrentUser(ctx context.Context) (*Me, error) {
	var me Me
	url := r.baseURL + "/me"
	if err := r.get(ctx, "get current user", url, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

func (r *repository) ListClients(ctx context.Context, workspaceID int64) ([]Client, error) {
	var clients []Client
	url := fmt.Sprintf("%s/workspaces/%d/clients", r.baseURL, workspaceID)
	if err := r.get(ctx, "list clients", url, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repository) SearchTimeEntries(ctx context.Context, workspaceID int64, query SearchQuery) ([]SearchResult, error) {
	// An absent or null client_ids filter is not the same as an empty one;
	// the API wants an empty array to mean "all clients".
	if query.ClientIDs == nil {
		query.ClientIDs = []int64{}
	}
	if query.OrderBy == "" {
		query.OrderBy = "date"
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, errors.NewTransportError("search time entries", err)
	}

	url := fmt.Sprintf("%s/workspace/%d/search/time_entries", r.reportsBaseURL, workspaceID)
	var results []SearchResult
	if err := r.do(ctx, "search time entries", http.MethodPost, url, body, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *repository) get(ctx context.Context, operation, url string, out interface{}) error {
	return r.do(ctx, operation, http.MethodGet, url, nil, out)
}

func (r *repository) do(ctx context.Context, operation, method, url string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.NewTransportError(operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", r.authHeader)

	logging.Debugf("toggl: %s %s\n", method, url)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.NewTransportError(operation, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewTransportError(operation, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.NewAuthenticationError(operation, fmt.Errorf("status %d: %s", resp.StatusCode, string(data)))
	case resp.StatusCode != http.StatusOK:
		return errors.NewTransportError(operation, fmt.Errorf("status %d: %s", resp.StatusCode, string(data))).
			WithContext("status", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewMalformedResponseError(fmt.Sprintf("decoding %s response", operation), err)
	}
	return nil
}
