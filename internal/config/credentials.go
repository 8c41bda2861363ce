package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/robert-osoelectronics/toggl-reports/internal/errors"
)

const secretsSection = "SECRETS"

// Credentials holds the Toggl API token and the cached default workspace ID.
type Credentials struct {
	APIToken    string
	WorkspaceID int64
}

// String renders the credentials in the same layout as the secrets file, so
// the interactive setup can echo exactly what will be written to disk.
func (c *Credentials) String() string {
	return fmt.Sprintf("[%s]\napi_token = %s\nworkspace_id = %d\n", secretsSection, c.APIToken, c.WorkspaceID)
}

// CredentialStore reads and writes the local secrets file. It is injected
// into the CLI so business logic never touches the filesystem directly.
type CredentialStore interface {
	// Load returns the stored credentials. The boolean reports whether the
	// secrets file exists; a missing file is not an error.
	Load() (*Credentials, bool, error)
	// Save writes the credentials to the secrets file.
	Save(creds *Credentials) error
	// Path returns the location of the secrets file.
	Path() string
}

type iniCredentialStore struct {
	path string
}

// NewCredentialStore creates a CredentialStore backed by an INI file at the
// given path.
func NewCredentialStore(path string) CredentialStore {
	return &iniCredentialStore{path: path}
}

func (s *iniCredentialStore) Path() string {
	return s.path
}

func (s *iniCredentialStore) Load() (*Credentials, bool, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, false, nil
	}

	file, err := ini.Load(s.path)
	if err != nil {
		return nil, true, errors.NewConfigError(fmt.Sprintf("cannot read secrets file %s", s.path), err)
	}

	section := file.Section(secretsSection)
	token := section.Key("api_token").String()
	if token == "" {
		return nil, true, errors.NewConfigError(fmt.Sprintf("secrets file %s is missing api_token", s.path), nil)
	}

	workspaceID, err := section.Key("workspace_id").Int64()
	if err != nil {
		return nil, true, errors.NewConfigError(fmt.Sprintf("secrets file %s has an invalid workspace_id", s.path), err)
	}

	return &Credentials{APIToken: token, WorkspaceID: workspaceID}, true, nil
}

func (s *iniCredentialStore) Save(creds *Credentials) error {
	file := ini.Empty()
	section, err := file.NewSection(secretsSection)
	if err != nil {
		return errors.NewConfigError("cannot build secrets file", err)
	}
	section.Key("api_token").SetValue(creds.APIToken)
	section.Key("workspace_id").SetValue(fmt.Sprintf("%d", creds.WorkspaceID))

	if err := file.SaveTo(s.path); err != nil {
		return errors.NewConfigError(fmt.Sprintf("cannot write secrets file %s", s.path), err)
	}
	return nil
}
