package filesystem

import (
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory holding habits settings.
const AppDirName = ".habits"

// UserHomeDir returns the current user's home directory, or "." when unknown.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// AppDir returns ~/.habits.
func AppDir() string {
	return filepath.Join(UserHomeDir(), AppDirName)
}
