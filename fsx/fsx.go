// Package fsx provides small file and path helpers: existence checks and
// deletion. They delegate to the platform and translate the errors; a
// missing path is an answer for the existence checks, never a failure.
package fsx

import (
	"os"

	"github.com/pkg/errors"
)

// Exists reports whether path refers to anything in the filesystem.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %s", path)
}

// FileExists reports whether path refers to an existing non-directory.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %s", path)
}

// DirExists reports whether path refers to an existing directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %s", path)
}

// Remove deletes the file or empty directory at path. Deleting a path
// that does not exist is an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Wrapf(err, "remove %s", path)
	}
	return nil
}

// RemoveIfExists deletes the file or empty directory at path and reports
// whether anything was there to delete.
func RemoveIfExists(path string) (bool, error) {
	err := os.Remove(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "remove %s", path)
}
