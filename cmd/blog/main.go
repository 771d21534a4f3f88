// Command blog runs the blog API and its maintenance tasks.
//
// Usage:
//
//	blog serve            apply migrations and start the HTTP API
//	blog migrate          apply migrations and exit
//	blog token issue      print a new session token
//	blog token verify T   check a token's signature and expiry
//
// Configuration is read from the environment (and an optional .env file).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, executes the selected command and returns the process
// exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := newCLI(ctx, stdout)
	parser := flags.NewParser(c, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "blog"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		fmt.Fprintln(stderr, "blog:", err)
		return 1
	}
	return 0
}
