package main

import (
	"log"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

const (
	ENV_FILE_VAR     = "UNIFONTATLAS_ENV"
	DEFAULT_ENV_FILE = ".env"
)

var opts struct {
	Debug bool `short:"d" long:"debug" env:"UNIFONTATLAS_DEBUG" description:"dump the layout and other debug information"`

	Build   buildCommand   `command:"build" description:"build a glyph atlas and index from a .hex font"`
	Preview previewCommand `command:"preview" description:"draw text with a finished atlas"`
}

var parser = flags.NewParser(&opts, flags.Default)

// loadEnv reads an optional .env file so options can be given as
// UNIFONTATLAS_* variables. Variables already set win.
func loadEnv() {
	path := os.Getenv(ENV_FILE_VAR)
	if path == "" {
		path = DEFAULT_ENV_FILE
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Fatalf("could not load %s: %v", path, err)
	}
}

func main() {
	loadEnv()

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
