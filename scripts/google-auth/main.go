// scripts/google-auth/main.go
//
// Run this locally to obtain a Google access token for testing the API
// without the browser frontend. The token can be posted to
// /api/v1/auth/login as {"access_token": "..."}.
//
// Usage:
//   go run scripts/google-auth/main.go [credentials.json]
//
// It will print a browser URL, you log in with your Google account,
// paste the authorization code, and the access token is printed.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data,
		calendar.CalendarEventsScope,
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open the following URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	fmt.Println()
	fmt.Println("Access token (valid for about an hour):")
	fmt.Println()
	fmt.Println(tok.AccessToken)
	fmt.Println()
	fmt.Println(`Sign in against a running API with:`)
	fmt.Printf("  curl -X POST localhost:8080/api/v1/auth/login -d '{\"access_token\":\"<token>\"}' -H 'Content-Type: application/json'\n")
}
