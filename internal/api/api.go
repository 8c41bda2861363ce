package api

import (
	"context"
	"time"

	"github.com/robert-osoelectronics/toggl-reports/internal/domain"
	"github.com/robert-osoelectronics/toggl-reports/internal/logging"
	"github.com/robert-osoelectronics/toggl-reports/internal/repository/toggl"
	"github.com/robert-osoelectronics/toggl-reports/internal/services"
	"github.com/robert-osoelectronics/toggl-reports/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// ReportOptions selects what GenerateReport fetches and aggregates.
type ReportOptions struct {
	// NumDays is the size of the day-count lookback window ending today.
	NumDays int
	// ClientIDs filters the search; empty means all clients.
	ClientIDs []int64
}

// API defines the operations the CLI runs against the Toggl workspace.
type API interface {
	// ResolveWorkspace returns the authenticated user's default workspace ID.
	ResolveWorkspace(ctx context.Context) (int64, error)
	// Clients fetches the workspace client list as a lookup directory.
	Clients(ctx context.Context) (*ClientDirectory, error)
	// GenerateReport fetches time entries for the lookback window and
	// aggregates them by day and task.
	GenerateReport(ctx context.Context, opts ReportOptions) (*domain.Report, error)
}

type apiImpl struct {
	repo             toggl.Repository
	workspaceID      int64
	timeService      services.TimeService
	reportingService services.ReportingService
	validator        *validation.ReportValidator
}

// New creates a new API instance bound to one workspace.
func New(repo toggl.Repository, workspaceID int64) API {
	timeService := services.NewTimeService()
	return &apiImpl{
		repo:             repo,
		workspaceID:      workspaceID,
		timeService:      timeService,
		reportingService: services.NewReportingService(timeService),
		validator:        validation.NewReportValidator(),
	}
}

func (a *apiImpl) ResolveWorkspace(ctx context.Context) (int64, error) {
	me, err := a.repo.GetCurrentUser(ctx)
	if err != nil {
		return 0, err
	}
	return me.DefaultWorkspaceID, nil
}

func (a *apiImpl) Clients(ctx context.Context) (*ClientDirectory, error) {
	clients, err := a.repo.ListClients(ctx, a.workspaceID)
	if err != nil {
		return nil, err
	}
	return NewClientDirectory(clients), nil
}

func (a *apiImpl) GenerateReport(ctx context.Context, opts ReportOptions) (*domain.Report, error) {
	if err := a.validator.ValidateNumDays(opts.NumDays); err != nil {
		return nil, err
	}

	dateRange, err := a.timeService.LastDaysRange(opts.NumDays, timeNow())
	if err != nil {
		return nil, err
	}
	logging.Debugf("report: fetching entries from %s to %s\n", dateRange.StartString(), dateRange.EndString())

	results, err := a.repo.SearchTimeEntries(ctx, a.workspaceID, toggl.SearchQuery{
		ClientIDs: opts.ClientIDs,
		StartDate: dateRange.StartString(),
		EndDate:   dateRange.EndString(),
	})
	if err != nil {
		return nil, err
	}

	return a.reportingService.BuildReport(results)
}
