package policy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/obolus/obolus-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// Ext is the file extension recognized as a policy document. Documents are
// read as raw text; nothing parses the JSON yet.
const Ext = ".json"

// Loader reads policy documents from a directory
type Loader struct {
	dir string
}

// NewLoader creates a Loader for the given directory
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Dir returns the directory this loader reads from
func (l *Loader) Dir() string {
	return l.dir
}

// Load enumerates the policy directory and returns a fresh mapping from
// policy name (filename minus extension) to document. The directory is
// re-read on every call; nothing is cached between calls.
//
// The load is fail-fast: a missing or unreadable directory, or the first
// unreadable file, aborts the whole load with an IO-kind error. If policies
// ever move to an unreliable source this is the place to add skip-or-aggregate
// semantics.
func (l *Loader) Load() (domain.PaymentPolicies, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, domain.NewIOError(fmt.Errorf("reading policy directory %s: %w", l.dir, err))
	}

	policies := make(domain.PaymentPolicies)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Ext {
			continue
		}

		content, err := os.ReadFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			return nil, domain.NewIOError(fmt.Errorf("reading policy file %s: %w", entry.Name(), err))
		}

		name := strings.TrimSuffix(entry.Name(), Ext)
		policies[name] = domain.Policy{Name: name, Content: string(content)}
	}

	log.Debug().Int("count", len(policies)).Str("dir", l.dir).Msg("Loaded policies")

	return policies, nil
}
