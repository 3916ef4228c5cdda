package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is one generated artifact and the path it belongs at
type File struct {
	Path    string
	Content []byte
}

// WriteFiles writes every file, creating parent directories as needed and
// overwriting existing files. It stops at the first failure.
func WriteFiles(files []File) error {
	for _, file := range files {
		if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", file.Path, err)
		}

		if err := os.WriteFile(file.Path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}

	return nil
}
