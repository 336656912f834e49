package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .rankbot/ directory.
// All fields are pre-computed strings.
type Paths struct {
	Root string // .rankbot/
	DB   string // .rankbot/rankbot.db

	LogDir     string // .rankbot/log/
	SessionLog string // .rankbot/log/session.log
}

// NewPaths constructs all resolved paths from a base directory (usually $HOME).
func NewPaths(base string) *Paths {
	root := filepath.Join(base, ".rankbot")
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "rankbot.db"),

		LogDir:     filepath.Join(root, "log"),
		SessionLog: filepath.Join(root, "log", "session.log"),
	}
}

// EnsureDirs creates all subdirectories under .rankbot/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.LogDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}

// OpenSessionLog opens the session log for appending, creating directories
// as needed.
func (p *Paths) OpenSessionLog() (*os.File, error) {
	if err := p.EnsureDirs(); err != nil {
		return nil, err
	}
	return os.OpenFile(p.SessionLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
