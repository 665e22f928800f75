package model

import (
	"os"
	"path/filepath"
	"strings"
)

// WriteArtifacts writes one `P-N.stl` / `P-N.txt` pair per artifact
// under dir, for prefix P and product name N. A file is skipped when
// the corresponding result group is empty, rather than writing an
// empty placeholder.
func WriteArtifacts(dir, prefix string, artifacts []Artifact) error {
	for _, art := range artifacts {
		base := prefix + "-" + art.Product
		if art.Solid != nil {
			path := filepath.Join(dir, base+".stl")
			if err := os.WriteFile(path, []byte(art.Solid.ToStl(art.Product)), 0o644); err != nil {
				return err
			}
		}
		if len(art.Lines) > 0 {
			path := filepath.Join(dir, base+".txt")
			content := strings.Join(art.Lines, "\n") + "\n"
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}
