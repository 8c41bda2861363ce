package toggl

// Me is the response shape of the current-user endpoint. Only the fields
// this program reads are declared; the API returns many more.
type Me struct {
	ID                 int64  `json:"id"`
	Fullname           string `json:"fullname"`
	Email              string `json:"email"`
	DefaultWorkspaceID int64  `json:"default_workspace_id"`
}

// Client is one entry of the workspace clients listing.
type Client struct {
	ID          int64  `json:"id"`
	WorkspaceID int64  `json:"wid"`
	Name        string `json:"name"`
	At          string `json:"at"`
}

// SearchQuery is the request body for the time-entry search endpoint.
// ClientIDs must be present and empty (not null) to include all clients.
type SearchQuery struct {
	ClientIDs []int64 `json:"client_ids"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	OrderBy   string  `json:"order_by"`
}

// SearchTimeEntry is one nested tracked interval inside a search result.
// Start and Stop are RFC3339 timestamps carrying the workspace UTC offset.
type SearchTimeEntry struct {
	Start   string `json:"start"`
	Stop    string `json:"stop"`
	Seconds int64  `json:"seconds"`
}

// SearchResult is one element of the search response. The API returns
// exactly one nested time entry per result; callers treat any other count
// as a malformed response.
type SearchResult struct {
	Description string            `json:"description"`
	TimeEntries []SearchTimeEntry `json:"time_entries"`
}
