package main

import (
	"log"
	"os"

	"cashdesk/internal/config"
	"cashdesk/internal/console"
	"cashdesk/internal/ledger"
	"cashdesk/internal/storage/jsonfile"
)

func main() {
	cfg := config.Load()

	store, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data directory %q: %v", cfg.DataDir, err)
	}
	log.Printf("using data directory %q", cfg.DataDir)

	app := console.New(ledger.New(store), os.Stdin, os.Stdout)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
