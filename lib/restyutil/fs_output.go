package restyutil

import (
	"log/slog"
	"os"
	"path/filepath"
)

// FilesystemOutput writes each exchange to <dir>/<name>.http.
type FilesystemOutput struct {
	dir string
}

// NewFilesystemOutput empties dir so a dump only holds exchanges of the
// current run.
func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	err := os.RemoveAll(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{dir: dir}, nil
}

func (o FilesystemOutput) Write(name string, contents string) {
	path := filepath.Join(o.dir, name+".http")
	err := os.WriteFile(path, []byte(contents), 0o600)
	if err != nil {
		slog.Warn("failed to dump http exchange", "path", path, "err", err)
	}
}
