// Command flatten reads one JSON document from stdin and prints its leaves as a flat
// JSON array.
package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/UnknownOlympus/hermes/internal/config"
	"github.com/UnknownOlympus/hermes/internal/flatten"
)

func main() {
	env := os.Getenv("HERMES_ENV")
	if env == "" {
		env = config.EnvProd
	}
	logger := config.NewLogger(env, os.Stderr)

	dec := json.NewDecoder(os.Stdin)
	dec.UseNumber()

	var input any
	if err := dec.Decode(&input); err != nil {
		log.Fatalf("failed to decode input: %v", err)
	}

	flat := flatten.FlattenArray(logger, input)
	logger.Debug("Input flattened", slog.Int("leaves", len(flat)))

	if err := json.NewEncoder(os.Stdout).Encode(flat); err != nil {
		log.Fatalf("failed to encode output: %v", err)
	}
}
