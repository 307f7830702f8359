// Command example sends one SMS through GatewayAPI and prints its status.
//
//	GATEWAYAPI_TOKEN=... go run ./example -from TestCo -to "+45 12 34 56 78" -text Hello
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/NextMind-AI/gatewayapi-go/gatewayapi"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	from := flag.String("from", "", "sender name, at most 15 characters")
	to := flag.String("to", "", "comma separated recipient numbers")
	text := flag.String("text", "", "message text")
	verbose := flag.Bool("v", false, "log HTTP requests")
	flag.Parse()

	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	token := os.Getenv("GATEWAYAPI_TOKEN")
	if token == "" {
		log.Fatal().Msg("GATEWAYAPI_TOKEN environment variable is required")
	}

	var opts []gatewayapi.Option
	if *verbose {
		opts = append(opts, gatewayapi.WithLogger(log.Logger))
	}
	client := gatewayapi.NewClient(token, opts...)

	var recipients []gatewayapi.Recipient
	for _, number := range strings.Split(*to, ",") {
		if number = strings.TrimSpace(number); number != "" {
			recipients = append(recipients, gatewayapi.Recipient(number))
		}
	}

	ctx := context.Background()

	resp, err := client.SendSMS(ctx, *from, *text, recipients, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to send SMS")
	}
	printJSON(resp)

	status, err := client.GetMessageStatus(ctx, resp.IDs()...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get message status")
	}
	printJSON(status)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		return
	}
	fmt.Println(string(out))
}
