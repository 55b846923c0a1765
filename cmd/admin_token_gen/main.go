package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"travelbook/atlas/internal/auth"
	"travelbook/atlas/internal/config"
)

func main() {
	subject := flag.String("sub", "ops", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.AdminJWTSecret == "" {
		log.Fatal("ADMIN_JWT_SECRET is not set")
	}

	token, err := auth.NewTokenSigner([]byte(cfg.AdminJWTSecret)).Issue(*subject, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println("Operator token:", token)
}
