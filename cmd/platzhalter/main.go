// Command platzhalter runs the placeholder-image HTTP server.
// All runtime settings come from environment variables.
package main

import (
	"log"

	"github.com/eringen/platzhalter"
)

func main() {
	app := platzhalter.New(platzhalter.Config{
		Addr:           platzhalter.EnvOr("PLATZHALTER_HOST", "127.0.0.1:8080"),
		DatabasePath:   platzhalter.EnvOr("PLATZHALTER_DB", "data/platzhalter.db"),
		WatermarkText:  platzhalter.EnvOr("PLATZHALTER_WATERMARK", ""),
		MetricsEnabled: true,
	})
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
