// scripts/gemini-auth/main.go
//
// Checks that a Google service account file can authenticate against the
// Generative Language API before it is set as llm.credentials_path.
//
// Usage:
//   go run scripts/gemini-auth/main.go [service-account.json]

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2/google"

	"nl-dates/pkg/gemini"
)

func main() {
	credsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if credsPath == "" {
		log.Fatal("Pass the service account file as an argument or set GOOGLE_APPLICATION_CREDENTIALS")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, gemini.ServiceAccountScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is a service account key file.", err, credsPath)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tok, err := jwtCfg.TokenSource(ctx).Token()
	if err != nil {
		log.Fatalf("Failed to obtain access token: %v", err)
	}

	fmt.Printf("Service account: %s\n", jwtCfg.Email)
	fmt.Printf("Scope:           %s\n", gemini.ServiceAccountScope)
	fmt.Printf("Token expires:   %s\n", tok.Expiry.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Credentials are valid. Configure the service with:")
	fmt.Println("  llm.provider: gemini")
	fmt.Printf("  llm.credentials_path: %s\n", credsPath)
}
