package sites

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SitesFile is the YAML overlay shape for user-supplied adapters.
type SitesFile struct {
	Sites []Adapter `yaml:"sites"`
}

// LoadOverlay prepends adapters from a YAML file so user entries win over
// built-ins for the URLs they claim. A missing file is not an error; the
// built-in table already covers the common boards.
func (r *Registry) LoadOverlay(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var sf SitesFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return fmt.Errorf("sites overlay %s: %w", path, err)
	}

	var extra []Adapter
	for _, a := range sf.Sites {
		if a.Name == "" || len(a.URLContains) == 0 {
			// an overlay adapter without URL patterns would shadow the
			// whole built-in table
			return fmt.Errorf("sites overlay %s: adapter needs name and url_contains", path)
		}
		extra = append(extra, a)
	}

	r.adapters = append(extra, r.adapters...)
	return nil
}
