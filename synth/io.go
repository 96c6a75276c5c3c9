package synth

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load opens a file and decodes it with the given reader function.
func Load[T any](path string, read func(r io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return read(f)
}

// Save creates a file and encodes obj into it with the given writer
// function.
//
// The file is closed before returning, and a close error is reported if
// nothing else failed.
func Save[T any](path string, obj T, write func(w io.Writer, obj T) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "save")
		}
	}()
	return write(f, obj)
}
