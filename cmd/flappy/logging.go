package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// redirectLogs points l at the file at path while a full-screen program owns
// the terminal. Log lines written to stderr would be drawn over the frame.
// An empty path or an unusable file discards the output. The returned
// function restores stderr.
func redirectLogs(l *log.Logger, path string) func() {
	restore := func() { l.SetOutput(os.Stderr) }

	f, err := openLogFile(path)
	if err != nil {
		l.SetOutput(io.Discard)
		return restore
	}
	l.SetOutput(f)
	return func() {
		restore()
		f.Close()
	}
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, os.ErrNotExist
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
