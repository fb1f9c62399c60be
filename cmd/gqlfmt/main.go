// Command gqlfmt formats GraphQL query documents.
//
// Usage:
//
//	gqlfmt [flags] [file ...]
//
// Without files the document is read from standard input. Formatted text is
// written to standard output unless -w is given.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/graph-gophers/gqlfmt/config"
)

func main() {
	logger := logrus.New()
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	cmd := newRootCommand(cfg, logger)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
