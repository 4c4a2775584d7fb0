// Command wordimport seeds the database word list from a text file with one
// word or phrase per line. Lines starting with # are ignored.
//
// Usage:
//
//	wordimport --file=configs/profanity.txt
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ren-zee/exploremore/internal/app"
	"github.com/Ren-zee/exploremore/internal/config"
)

func main() {
	file := flag.String("file", "", "path of the word list to import")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: wordimport --file=words.txt")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := app.ImportWordFile(ctx, cfg, app.NewLogger(cfg.Log), *file)
	if err != nil {
		log.Fatalf("import words: %v", err)
	}

	fmt.Printf("Imported %d words, skipped %d.\n", res.Added, len(res.Skipped))
	for _, s := range res.Skipped {
		fmt.Printf("  skipped: %q\n", s)
	}
}
