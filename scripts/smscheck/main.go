// Command smscheck sends a single test SMS through the configured gateway.
//
// Usage: go run ./scripts/smscheck +254700000000
package main

import (
	"context"
	"fmt"
	"os"

	"duka/internal/config"
	"duka/internal/sms"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	recipient := cfg.SMS.TestRecipient
	if len(os.Args) > 1 {
		recipient = os.Args[1]
	}
	if recipient == "" {
		fmt.Fprintln(os.Stderr, "No recipient: pass a phone number or set AT_TEST_RECIPIENT")
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	gateway := sms.NewAfricasTalkingGateway(cfg.SMS, logger)

	resp, err := gateway.Send(context.Background(), "Test message", recipient)
	if err != nil {
		fmt.Fprintf(os.Stderr, "SMS send failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Provider message: %s\n", resp.Message)
	for _, r := range resp.Recipients {
		fmt.Printf("  %s status=%s statusCode=%d cost=%s messageId=%s\n",
			r.Number, r.Status, r.StatusCode, r.Cost, r.MessageID)
	}
}
