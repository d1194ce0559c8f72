// Package logging configures the standard logger.
package logging

import (
	"log"
	"os"
)

// Setup sends log output to filename, or to stderr when filename is empty.
// The returned cleanup closes the log file.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(os.Stderr)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
