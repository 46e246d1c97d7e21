// Command server runs the journaling backend HTTP server.
//
// Configuration comes from CONFIG_PATH (YAML) plus environment variables;
// DATABASE_DSN and AUTH_SESSION_SECRET are required.
package main

import (
	"context"
	"log"

	"github.com/daybook-app/daybook/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
