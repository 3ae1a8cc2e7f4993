package util

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFileAtomic streams write into a pending file next to path and renames
// it into place. On any error the pending file is removed and path is untouched.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithStaticPermissions(0o644))
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if err := write(pf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return pf.CloseAtomicallyReplace()
}
