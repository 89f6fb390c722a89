// Package main is the entry point for the taskcli CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskcli/internal/api"
	"taskcli/internal/backend/taskapi"
	"taskcli/internal/cli"
	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory
	factory := func(ctx context.Context, cfg *config.Config, client *api.Client) (service.Service, error) {
		return taskapi.New(client), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
