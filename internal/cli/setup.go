package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/robert-osoelectronics/toggl-reports/internal/api"
	"github.com/robert-osoelectronics/toggl-reports/internal/config"
	"github.com/robert-osoelectronics/toggl-reports/internal/errors"
)

// ensureCredentials loads stored credentials, running the interactive
// first-run setup when the secrets file does not exist yet.
func (a *App) ensureCredentials(ctx context.Context) (*config.Credentials, error) {
	creds, exists, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	if exists {
		return creds, nil
	}

	fmt.Fprintln(a.out, "No Config file found.")
	creds, err = a.enterUserConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(creds); err != nil {
		return nil, err
	}
	return creds, nil
}

// enterUserConfig prompts for the API token, resolves the workspace ID via
// the API, and loops until the user confirms the resulting config.
func (a *App) enterUserConfig(ctx context.Context) (*config.Credentials, error) {
	scanner := bufio.NewScanner(a.in)

	for {
		fmt.Fprintln(a.out, "\nEnter Toggl API Token:")
		token, err := readLine(scanner)
		if err != nil {
			return nil, err
		}

		fmt.Fprintln(a.out, "Querying workspace ID... ")
		apiInstance := api.New(a.newRepository(token), 0)
		workspaceID, err := apiInstance.ResolveWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(a.out, "Got workspace ID: %d\n", workspaceID)

		creds := &config.Credentials{APIToken: token, WorkspaceID: workspaceID}
		fmt.Fprintln(a.out, "Entered config:")
		fmt.Fprintln(a.out, creds.String())

		fmt.Fprintln(a.out, "Enter Y to save, any other key to re-enter secrets:")
		answer, err := readLine(scanner)
		if err != nil {
			return nil, err
		}
		if strings.ToLower(strings.TrimSpace(answer)) == "y" {
			return creds, nil
		}
	}
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.NewConfigError("reading interactive input", err)
		}
		return "", errors.NewConfigError("interactive input closed before setup finished", nil)
	}
	return scanner.Text(), nil
}
