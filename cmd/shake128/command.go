package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/codahale/shake128"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

// usageError is returned for malformed invocations, which are reported with the usage text and never produce output.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

// run executes the command with the given arguments and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *logrus.Logger) int {
	cmd := newCommand(stdin, logger)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var uerr usageError
		if errors.As(err, &uerr) {
			_, _ = fmt.Fprintf(stderr, "shake128: %v\n%s", err, cmd.UsageString())
			return exitUsage
		}

		logger.WithError(err).Error("shake128 failed")
		return exitFatal
	}
	return exitOK
}

func newCommand(stdin io.Reader, logger *logrus.Logger) *cobra.Command {
	var (
		input   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "shake128 [flags] <length>",
		Short: "Write the SHAKE128 digest of the input as hex",
		Long: "Reads the entire input and writes its SHAKE128 digest, <length> bytes long, to standard output as " +
			"lowercase hex followed by a newline.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{fmt.Sprintf("expected exactly one length argument, got %d", len(args))}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			n, err := strconv.ParseInt(args[0], 10, 0)
			if err != nil || n < 0 {
				return usageError{fmt.Sprintf("invalid length %q: must be a non-negative integer", args[0])}
			}

			r := stdin
			if input != "" {
				f, err := os.Open(input)
				if err != nil {
					return errors.Wrapf(err, "opening %s", input)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			start := time.Now()
			msg, err := io.ReadAll(r)
			if err != nil {
				return errors.Wrap(err, "reading input")
			}

			out := shake128.Sum(msg, int(n))
			logger.WithFields(logrus.Fields{
				"input_bytes":  len(msg),
				"output_bytes": n,
				"elapsed":      time.Since(start),
			}).Debug("computed digest")

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out)); err != nil {
				return errors.Wrap(err, "writing output")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read input from `file` instead of standard input")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to standard error")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err.Error()}
	})

	return cmd
}
