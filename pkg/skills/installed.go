package skills

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/skillctl/skillctl/pkg/registry"
)

// Installed describes one registry entry, whether or not its skill
// metadata can still be read (a broken link keeps its registry row but
// loses its description).
type Installed struct {
	Name        string
	Scope       registry.Scope
	State       registry.EntryState
	Path        string
	LinkTarget  string
	Description string
}

// ListInstalled enumerates the registry entries for the given scopes,
// sorted by scope then name. Missing registry directories are treated as
// empty, not as errors.
func ListInstalled(reg *registry.Registry, scopes ...registry.Scope) ([]Installed, error) {
	var installed []Installed

	for _, scope := range scopes {
		baseDir, err := reg.BaseDir(scope)
		if err != nil {
			return nil, err
		}

		entries, err := os.ReadDir(baseDir)
		if err != nil {
			continue
		}

		for _, dirEntry := range entries {
			entry, err := registry.Inspect(filepath.Join(baseDir, dirEntry.Name()))
			if err != nil || !entry.Exists() {
				continue
			}

			item := Installed{
				Name:       entry.Name,
				Scope:      scope,
				State:      entry.State,
				Path:       entry.Path,
				LinkTarget: entry.LinkTarget,
			}

			if skill, err := Load(entry.Path); err == nil {
				item.Description = skill.Description
			}

			installed = append(installed, item)
		}
	}

	sort.Slice(installed, func(i, j int) bool {
		if installed[i].Scope != installed[j].Scope {
			return installed[i].Scope < installed[j].Scope
		}
		return installed[i].Name < installed[j].Name
	})

	return installed, nil
}
