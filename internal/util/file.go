package util

import (
	"io"
	"os"
)

// FileCopy copies source to dest, preserving the file mode. An existing dest
// is truncated.
func FileCopy(source string, dest string) error {
	s, err := os.Open(source)
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	fi, err := s.Stat()
	if err != nil {
		return err
	}

	d, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode())
	if err != nil {
		return err
	}

	_, err = io.Copy(d, s)
	if err != nil {
		_ = d.Close()
		return err
	}

	return d.Close()
}
