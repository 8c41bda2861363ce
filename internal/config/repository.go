package config

import (
	"github.com/robert-osoelectronics/toggl-reports/internal/repository/toggl"
)

// CreateRepository creates an authenticated Toggl repository using the
// configured endpoints and HTTP timeout.
func CreateRepository(cfg *Config, apiToken string) toggl.Repository {
	return toggl.New(apiToken, cfg.API.BaseURL, cfg.API.ReportsBaseURL, cfg.API.Timeout)
}
