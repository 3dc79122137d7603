package main

import (
	"context"
	"log"
	"os"

	"github.com/woozio/download-service/internal/app/bootstrap"
)

func main() {
	configPath := "configs/default.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, configPath)
	if err != nil {
		log.Fatalf("bootstrap download service: %v", err)
	}
	if err := runtime.Run(ctx); err != nil {
		log.Fatalf("run download service: %v", err)
	}
}
