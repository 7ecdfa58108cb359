package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	flags "github.com/jessevdk/go-flags"

	"unifontatlas/atlas"
)

var ErrBadColor = errors.New("color must look like #RRGGBB")

type previewCommand struct {
	Image   flags.Filename `long:"image" default:"chars.png" env:"UNIFONTATLAS_IMAGE" description:"atlas PNG to read"`
	Index   flags.Filename `long:"index" default:"chars.txt" env:"UNIFONTATLAS_INDEX" description:"index file to read"`
	Output  flags.Filename `short:"o" long:"output" default:"preview.png" description:"where to save the preview"`
	Color   string         `short:"c" long:"color" default:"#FFFFFF" description:"text color"`
	Scale   int            `short:"s" long:"scale" default:"1" description:"integer zoom factor"`
	Wrap    int            `short:"w" long:"wrap" default:"0" description:"wrap after this many cells, 0 for no wrapping"`
	Compact bool           `long:"compact" description:"draw half width glyphs 8 px wide"`

	Args struct {
		Text []string `positional-arg-name:"text" required:"1"`
	} `positional-args:"yes"`
}

func parseColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	rgb, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}

func (c *previewCommand) Execute(args []string) error {
	atlas.Debug = opts.Debug

	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	tint, err := parseColor(c.Color)
	if err != nil {
		return err
	}

	sheet, err := imaging.Open(string(c.Image))
	if err != nil {
		return err
	}
	f, err := os.Open(string(c.Index))
	if err != nil {
		return err
	}
	defer f.Close()
	idx, err := atlas.ReadIndex(f)
	if err != nil {
		return err
	}

	face, err := atlas.NewFace(sheet, idx, c.Compact)
	if err != nil {
		return err
	}
	rd := &atlas.Renderer{Face: face}

	text := strings.Join(c.Args.Text, " ")
	size := rd.Measure(text, c.Wrap)
	if size.X == 0 {
		return fmt.Errorf("none of %q is in the atlas", text)
	}

	canvas := imaging.New(size.X, size.Y, color.Black)
	rd.Draw(canvas, text, image.Point{}, tint, c.Wrap)

	var img image.Image = canvas
	if c.Scale > 1 {
		img = imaging.Resize(canvas, size.X*c.Scale, size.Y*c.Scale, imaging.NearestNeighbor)
	}

	if err := imaging.Save(img, string(c.Output)); err != nil {
		return err
	}
	fmt.Println("wrote preview to", c.Output)
	return nil
}
