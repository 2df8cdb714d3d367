// Command errands is a to-do list terminal prompt.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bdreece/errands/cmd"
)

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	err := cmd.Run(ctx, os.Args[1:])
	if err == nil {
		return
	}
	if ctx.Err() != nil {
		fmt.Fprintf(os.Stderr, "\nInterrupted\n")
		os.Exit(cmd.ExitInterrupted)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	code := cmd.ExitCode(err)
	if code == cmd.ExitUsage {
		fmt.Fprintln(os.Stderr, "Run 'errands --help' for usage.")
	}
	os.Exit(code)
}
