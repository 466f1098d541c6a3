package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const constitutionPlaceholder = `# Project Constitution

Project principles live here. Fill this in with the constraints every
feature must honor.
`

// EnsureLayout idempotently creates the shared specification and
// project-memory directories under the canonical root. Placeholder
// marker files are written only when a directory was entirely absent;
// existing content is never touched and nothing is ever deleted.
func EnsureLayout(root, specsDir, memoryDir string) error {
	specs := filepath.Join(root, specsDir)
	if _, err := os.Stat(specs); os.IsNotExist(err) {
		log.Debug().Str("dir", specs).Msg("creating specs directory")
		if err := os.MkdirAll(specs, 0755); err != nil {
			return fmt.Errorf("creating specs directory: %w", err)
		}
		if err := os.WriteFile(filepath.Join(specs, ".gitkeep"), nil, 0644); err != nil {
			return fmt.Errorf("writing specs marker: %w", err)
		}
	}

	memory := filepath.Join(root, memoryDir)
	if _, err := os.Stat(memory); os.IsNotExist(err) {
		log.Debug().Str("dir", memory).Msg("creating memory directory")
		if err := os.MkdirAll(memory, 0755); err != nil {
			return fmt.Errorf("creating memory directory: %w", err)
		}
		path := filepath.Join(memory, "constitution.md")
		if err := os.WriteFile(path, []byte(constitutionPlaceholder), 0644); err != nil {
			return fmt.Errorf("writing constitution placeholder: %w", err)
		}
	}

	return nil
}
