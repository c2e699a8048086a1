package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger opens the --log-file logger. The TUI owns stdout, so without a
// file the logger discards everything. The returned func closes the file.
func newLogger(path string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           log.DebugLevel,
	})
	return logger, closeFn, nil
}
