// Command token mints an operator JWT for calling the API during
// development and manual testing.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/glbatch/buko-service/internal/auth"
)

func main() {
	_ = godotenv.Load()

	operator := flag.String("operator", "", "operator id (defaults to a fresh uuid)")
	name := flag.String("name", "dev-operator", "operator display name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET must be set")
		os.Exit(1)
	}

	operatorID := uuid.New()
	if *operator != "" {
		var err error
		operatorID, err = uuid.Parse(*operator)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid operator id: %v\n", err)
			os.Exit(1)
		}
	}

	token, err := auth.GenerateToken(operatorID, *name, secret, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("operator_id: %s\n", operatorID)
	fmt.Println(token)
}
