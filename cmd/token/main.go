// Command token mints a bearer token for local development. Production
// tokens come from the identity service; this tool signs with the same
// secret and issuer the server validates against.
//
// Usage: token [user-id]   (a random user id is generated when omitted)
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/auth"
	"github.com/heartmarshall/myenglish-practice/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if len(os.Args) > 1 {
		userID, err = uuid.Parse(os.Args[1])
		if err != nil {
			log.Fatalf("parse user id: %v", err)
		}
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).
		GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user: %s\n", userID)
	fmt.Println(token)
}
