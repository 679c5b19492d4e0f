// Package main mints bearer tokens for local development.
//
//	go run ./cmd/token -sub alice -ttl 2h
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/staffhub/staffhub/internal/auth"
	"github.com/staffhub/staffhub/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg := config.LoadAuthConfigFromEnv()

	sub := flag.String("sub", "", "user id placed in the sub claim (required)")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", cfg.TokenTTL, "token lifetime")
	flag.Parse()

	if *sub == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg.TokenTTL = *ttl
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid auth configuration: %v", err)
	}

	token, err := auth.NewManager(cfg).Generate(*sub, *email)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
