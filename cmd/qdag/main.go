package main

import (
	"fmt"
	"io"
	"os"

	"github.com/HQSquantumsimulations/qoqo-sub001/internal/app"
	"github.com/HQSquantumsimulations/qoqo-sub001/internal/cli"
)

// main is the entrypoint for the qdag binary.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, logW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	return app.Run(config, outW, logW)
}
