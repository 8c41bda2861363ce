package cli

import (
	"context"

	"github.com/robert-osoelectronics/toggl-reports/internal/repository/toggl"
)

// mockRepository implements toggl.Repository and records the calls it receives
type mockRepository struct {
	me            *toggl.Me
	meErr         error
	clients       []toggl.Client
	clientsErr    error
	searchResults []toggl.SearchResult
	searchErr     error

	tokens      []string
	searchCalls int
	lastQuery   toggl.SearchQuery
}

func (m *mockRepository) GetCurrentUser(ctx context.Context) (*toggl.Me, error) {
	return m.me, m.meErr
}

func (m *mockRepository) ListClients(ctx context.Context, workspaceID int64) ([]toggl.Client, error) {
	return m.clients, m.clientsErr
}

func (m *mockRepository) SearchTimeEntries(ctx context.Context, workspaceID int64, query toggl.SearchQuery) ([]toggl.SearchResult, error) {
	m.searchCalls++
	m.lastQuery = query
	return m.searchResults, m.searchErr
}

func (m *mockRepository) factory() RepositoryFactory {
	return func(apiToken string) toggl.Repository {
		m.tokens = append(m.tokens, apiToken)
		return m
	}
}
