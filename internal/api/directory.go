package api

import (
	"strings"

	"github.com/robert-osoelectronics/toggl-reports/internal/repository/toggl"
)

// ClientDirectory is the lookup view of a workspace's client list. Keys are
// lower-cased client names, so lookups are case-insensitive; two clients
// whose names differ only in case collide and the later one wins, matching
// the behaviour existing client lists rely on.
type ClientDirectory struct {
	names []string
	ids   map[string]int64
}

// NewClientDirectory builds a directory from the raw client list, keeping
// first-appearance order of the lower-cased names.
func NewClientDirectory(clients []toggl.Client) *ClientDirectory {
	dir := &ClientDirectory{
		ids: make(map[string]int64),
	}
	for _, client := range clients {
		key := strings.ToLower(client.Name)
		if _, seen := dir.ids[key]; !seen {
			dir.names = append(dir.names, key)
		}
		dir.ids[key] = client.ID
	}
	return dir
}

// Lookup returns the client ID for a name, matched case-insensitively.
func (d *ClientDirectory) Lookup(name string) (int64, bool) {
	id, ok := d.ids[strings.ToLower(name)]
	return id, ok
}

// Names returns the known client names (lower-cased) in API order.
func (d *ClientDirectory) Names() []string {
	return d.names
}

// Len returns the number of distinct clients in the directory.
func (d *ClientDirectory) Len() int {
	return len(d.names)
}
