package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"

	"unifontatlas/atlas"
)

type buildCommand struct {
	Input     flags.Filename `short:"i" long:"input" default:"unifont.hex" env:"UNIFONTATLAS_INPUT" description:"unifont .hex file to read"`
	Image     flags.Filename `short:"o" long:"image" default:"chars.png" env:"UNIFONTATLAS_IMAGE" description:"atlas PNG to write"`
	Index     flags.Filename `long:"index" default:"chars.txt" env:"UNIFONTATLAS_INDEX" description:"index file to write, empty to skip"`
	Predicate string         `short:"p" long:"predicate" default:"unassigned-exclude" env:"UNIFONTATLAS_PREDICATE" choice:"unassigned-exclude" choice:"pictographic-plus-drawing" choice:"pictographic-plus-ascii" description:"which glyphs go into the atlas"`
	Encoding  string         `short:"e" long:"encoding" default:"luminance-alpha" env:"UNIFONTATLAS_ENCODING" choice:"binary-1bit" choice:"binary-8bit" choice:"luminance-alpha" description:"how atlas pixels are stored"`
}

func (c *buildCommand) Execute(args []string) error {
	atlas.Debug = opts.Debug

	enc, err := atlas.ParseEncoding(c.Encoding)
	if err != nil {
		return err
	}

	f, err := os.Open(string(c.Input))
	if err != nil {
		return err
	}
	defer f.Close()

	out, err := atlas.Generate(f, atlas.Config{
		Predicate: c.Predicate,
		Encoding:  enc,
	})
	if err != nil {
		return err
	}

	return out.WriteFiles(string(c.Image), string(c.Index))
}
