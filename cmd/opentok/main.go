package main

import (
	"context"
	"log"
	"os"

	"github.com/streamsign/opentok-go/internal/cli"
)

func main() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	app := cli.New(cfg)
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}
