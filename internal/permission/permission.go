// Package permission gates access to the music folder. A denied check is a
// normal, recoverable condition: the caller reports it and refuses the
// operation instead of crashing or retrying.
package permission

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrDenied reports that the music folder cannot be read.
var ErrDenied = errors.New("storage access denied")

// Gate checks whether a directory may be browsed.
type Gate interface {
	// Check returns nil when dir is a readable directory, ErrDenied
	// (wrapped with the path) when access is refused, and other errors
	// for missing or non-directory paths.
	Check(dir string) error
}

// OS is the real Gate backed by the filesystem.
type OS struct{}

func NewOS() *OS {
	return &OS{}
}

func (*OS) Check(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrDenied, dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	// Stat alone does not prove readability; opening does.
	f, err := os.Open(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrDenied, dir)
		}
		return err
	}
	return f.Close()
}

var _ Gate = (*OS)(nil)
