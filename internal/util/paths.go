package util

import (
	"os"
	"path/filepath"
)

// LogPath returns the directory that security manager should put logs under. If SECURITY_MANAGER_DIR is
// set, this path is $SECURITY_MANAGER_DIR/logs, otherwise it is /var/log.
func LogPath(path ...string) string {
	varDir := os.Getenv("SECURITY_MANAGER_DIR")
	logDir := "/var/log"
	if varDir != "" {
		logDir = filepath.Join(varDir, "logs")
	}

	items := []string{logDir}
	items = append(items, path...)
	return filepath.Join(items...)
}

// RunPath returns the directory that security manager should put runtime data under.
// If SECURITY_MANAGER_DIR is set, this path is $SECURITY_MANAGER_DIR/run, otherwise it is /run/security-manager.
func RunPath(path ...string) string {
	varDir := os.Getenv("SECURITY_MANAGER_DIR")
	runDir := "/run/security-manager"
	if varDir != "" {
		runDir = filepath.Join(varDir, "run")
	}

	items := []string{runDir}
	items = append(items, path...)
	return filepath.Join(items...)
}

// VarPath returns the provided path elements joined by a slash and
// appended to the end of $SECURITY_MANAGER_DIR, which defaults to /var/lib/security-manager.
func VarPath(path ...string) string {
	varDir := os.Getenv("SECURITY_MANAGER_DIR")
	if varDir == "" {
		varDir = "/var/lib/security-manager"
	}

	items := []string{varDir}
	items = append(items, path...)
	return filepath.Join(items...)
}

// IsUnixSocket returns true if the given path is either a Unix socket
// or a symbolic link pointing at a Unix socket.
func IsUnixSocket(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeSocket) == os.ModeSocket
}
