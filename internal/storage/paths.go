// Package storage provides persistent storage for table preferences and game ledgers.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName   = "chesstable"
	dbDirName = "db"
	logName   = "chesstable.log"
)

// dataHome returns the per-user base directory for application data on goos:
//
//	darwin:  ~/Library/Application Support
//	windows: %APPDATA%, else ~/AppData/Roaming
//	others:  $XDG_DATA_HOME, else ~/.local/share
func dataHome(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	var env string
	var fallback []string
	switch goos {
	case "darwin":
		fallback = []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	default:
		env, fallback = "XDG_DATA_HOME", []string{".local", "share"}
	}

	if env != "" {
		if dir := getenv(env); dir != "" {
			return dir, nil
		}
	}
	h, err := home()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(append([]string{h}, fallback...)...), nil
}

func ensureDir(parts ...string) (string, error) {
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// GetDataDir returns the application data directory, creating it if needed.
func GetDataDir() (string, error) {
	base, err := dataHome(runtime.GOOS, os.Getenv, os.UserHomeDir)
	if err != nil {
		return "", err
	}
	return ensureDir(base, appName)
}

// GetDatabaseDir returns the directory holding the BadgerDB files.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(dataDir, dbDirName)
}

// DefaultLogFile is where front-ends that own the terminal write their logs.
func DefaultLogFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, logName), nil
}
