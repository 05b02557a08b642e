package sys

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/FuturFusion/security-manager/internal/util"
)

// OS is a high-level facade for accessing operating-system level functionalities.
type OS struct {
	// Directories
	LogDir string // Log directory (e.g. /var/log/).
	RunDir string // Runtime directory (e.g. /run/security-manager/).
	VarDir string // Data directory (e.g. /var/lib/security-manager/).

	writeLock sync.Mutex
}

// DefaultOS returns a fresh uninitialized OS instance with default values.
func DefaultOS() *OS {
	newOS := &OS{
		LogDir: util.LogPath(),
		RunDir: util.RunPath(),
		VarDir: util.VarPath(),
	}

	return newOS
}

// GetUnixSocket returns the full path to the unix.socket file that this daemon is listening on.
func (s *OS) GetUnixSocket() string {
	path := os.Getenv("SECURITY_MANAGER_SOCKET")
	if path != "" {
		return path
	}

	return filepath.Join(s.RunDir, "unix.socket")
}

// LocalDatabaseDir returns the path of the local database directory.
func (s *OS) LocalDatabaseDir() string {
	return filepath.Join(s.VarDir, "database")
}

// ConfigFile returns the path of the daemon configuration file.
func (s *OS) ConfigFile() string {
	return filepath.Join(s.VarDir, "config.yml")
}
