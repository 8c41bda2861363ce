package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/robert-osoelectronics/toggl-reports/internal/api"
	"github.com/robert-osoelectronics/toggl-reports/internal/config"
	"github.com/robert-osoelectronics/toggl-reports/internal/errors"
	"github.com/robert-osoelectronics/toggl-reports/internal/logging"
	"github.com/robert-osoelectronics/toggl-reports/internal/repository/toggl"
	"github.com/robert-osoelectronics/toggl-reports/internal/services"
	"github.com/robert-osoelectronics/toggl-reports/internal/validation"
)

// RepositoryFactory builds an authenticated repository for an API token.
// Injected so tests can substitute a mock transport.
type RepositoryFactory func(apiToken string) toggl.Repository

// App represents the main CLI application
type App struct {
	config        *config.Config
	store         config.CredentialStore
	newRepository RepositoryFactory
	render        services.RenderService
	validator     *validation.ReportValidator
	errorHandler  *ErrorHandler

	in  io.Reader
	out io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(cfg *config.Config, store config.CredentialStore, factory RepositoryFactory, in io.Reader, out io.Writer) *App {
	return &App{
		config:        cfg,
		store:         store,
		newRepository: factory,
		render:        services.NewRenderService(),
		validator:     validation.NewReportValidator(),
		errorHandler:  NewErrorHandler(),
		in:            in,
		out:           out,
	}
}

// ReportRequest carries the flag values of one invocation.
type ReportRequest struct {
	ClientName  string
	ClientSet   bool
	ListClients bool
	NumDays     int
}

// Run executes one report generation pass: load or create credentials,
// resolve the optional client filter, fetch, aggregate, and print.
func (a *App) Run(ctx context.Context, req ReportRequest) error {
	if err := a.validator.ValidateNumDays(req.NumDays); err != nil {
		return a.errorHandler.Handle("validate arguments", err)
	}
	if err := a.validator.ValidateClientName(req.ClientName, req.ClientSet); err != nil {
		return a.errorHandler.Handle("validate arguments", err)
	}

	creds, err := a.ensureCredentials(ctx)
	if err != nil {
		return a.errorHandler.Handle("load credentials", err)
	}

	apiInstance := api.New(a.newRepository(creds.APIToken), creds.WorkspaceID)

	if req.ListClients {
		return a.listClients(ctx, apiInstance)
	}

	var clientIDs []int64
	if req.ClientSet {
		clientIDs, err = a.resolveClientFilter(ctx, apiInstance, req.ClientName)
		if err != nil {
			return err
		}
	}

	report, err := apiInstance.GenerateReport(ctx, api.ReportOptions{
		NumDays:   req.NumDays,
		ClientIDs: clientIDs,
	})
	if err != nil {
		return a.errorHandler.Handle("generate report", err)
	}

	fmt.Fprint(a.out, a.render.Render(report))
	return nil
}

// listClients prints all known client names and makes no search call.
func (a *App) listClients(ctx context.Context, apiInstance api.API) error {
	directory, err := apiInstance.Clients(ctx)
	if err != nil {
		return a.errorHandler.Handle("list clients", err)
	}
	a.printClientNames(directory)
	return nil
}

// resolveClientFilter maps a client name to the single-element filter list.
// An unknown name prints the valid options and fails with a not-found error.
func (a *App) resolveClientFilter(ctx context.Context, apiInstance api.API, name string) ([]int64, error) {
	directory, err := apiInstance.Clients(ctx)
	if err != nil {
		return nil, a.errorHandler.Handle("list clients", err)
	}

	id, ok := directory.Lookup(name)
	if !ok {
		fmt.Fprintf(a.out, "Client %q not found. Valid clients are:\n", name)
		a.printClientNames(directory)
		return nil, errors.NewNotFoundError("client", name)
	}

	logging.Debugf("cli: client %q resolved to ID %d\n", name, id)
	fmt.Fprintf(a.out, "Filtering on client: %s\n", name)
	return []int64{id}, nil
}

func (a *App) printClientNames(directory *api.ClientDirectory) {
	for _, name := range directory.Names() {
		fmt.Fprintln(a.out, name)
	}
}
