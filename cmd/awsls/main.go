package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/younsl/awsls/internal/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := command.NewRootCmd(command.NewApp()).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
