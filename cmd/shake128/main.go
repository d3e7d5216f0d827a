// Command shake128 reads its input from standard input and writes the hex-encoded SHAKE128 digest of the requested
// length to standard output.
//
// Usage:
//
//	shake128 [flags] <length>
//
// The flags are:
//
//	-i, --input file
//		read input from file instead of standard input
//	-v, --verbose
//		log diagnostics to standard error
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, logger))
}
