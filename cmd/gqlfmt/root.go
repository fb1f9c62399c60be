package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/graph-gophers/gqlfmt"
	"github.com/graph-gophers/gqlfmt/config"
	"github.com/graph-gophers/gqlfmt/log"
)

func newRootCommand(cfg *config.Config, logger *logrus.Logger) *cobra.Command {
	var (
		indent  int
		write   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "gqlfmt [file ...]",
		Short:         "Format GraphQL query documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(cmd.ErrOrStderr())
			if indent < 1 {
				return fmt.Errorf("invalid --indent %d: must be at least 1", indent)
			}
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			opts := []gqlfmt.Opt{
				gqlfmt.IndentWidth(indent),
				gqlfmt.Logger(log.Logrus(logrus.NewEntry(logger))),
			}

			if len(args) == 0 {
				if write {
					return fmt.Errorf("cannot use -w with standard input")
				}
				return formatReader(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), "<stdin>", logger, opts)
			}

			var failed bool
			for _, path := range args {
				if err := formatFile(cmd.Context(), path, write, cmd.OutOrStdout(), logger, opts); err != nil {
					logger.WithError(err).WithField("file", path).Error("format failed")
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("some files could not be formatted")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&indent, "indent", cfg.IndentWidth, "Spaces per indentation level, must be at least 1")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the source file")
	cmd.Flags().BoolVar(&verbose, "verbose", cfg.Verbose, "Log debug information")
	return cmd
}

func formatReader(ctx context.Context, r io.Reader, w io.Writer, name string, logger *logrus.Logger, opts []gqlfmt.Opt) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := gqlfmt.FormatQuery(ctx, string(src), opts...)
	if err != nil {
		logger.WithError(err).WithField("file", name).Error("format failed")
		return err
	}
	logger.WithField("file", name).Debug("formatted")
	_, err = io.WriteString(w, out)
	return err
}

func formatFile(ctx context.Context, path string, write bool, w io.Writer, logger *logrus.Logger, opts []gqlfmt.Opt) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := gqlfmt.FormatQuery(ctx, string(src), opts...)
	if err != nil {
		return err
	}
	if !write {
		_, err = io.WriteString(w, out)
		return err
	}
	if out == string(src) {
		logger.WithField("file", path).Debug("already formatted")
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return err
	}
	logger.WithField("file", path).Debug("rewritten")
	return nil
}
