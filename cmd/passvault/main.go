package main

import (
	"context"
	"log"

	"github.com/aussiebroadwan/passvault/internal/vault/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("passvault: %v", err)
	}
}
