package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/javafind/internal/errors"
)

// MaxConfigSize bounds config files read for validation.
const MaxConfigSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded its read limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ReadFileWithLimit reads path, failing with ErrFileTooLarge when it holds
// more than limit bytes. Errors from os.Open are returned unwrapped so
// callers can test them with os.ErrNotExist.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes, limit %d", path, info.Size(), limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s exceeds limit %d", path, limit)
	}

	return data, nil
}
