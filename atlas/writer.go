package atlas

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// WriteImage encodes the sheet as a lossless PNG.
func WriteImage(w io.Writer, s *Sheet) error {
	return imaging.Encode(w, s.Image(), imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

// WriteFiles writes the atlas image and its index. Both are encoded in
// memory first so a failed encode leaves no files behind. An empty
// indexPath skips the index.
func (o *Output) WriteFiles(imagePath, indexPath string) error {
	var imageBuf bytes.Buffer
	if err := WriteImage(&imageBuf, o.Sheet); err != nil {
		return fmt.Errorf("encode %s: %w", imagePath, err)
	}

	var indexBuf bytes.Buffer
	if indexPath != "" {
		if err := WriteIndex(&indexBuf, o.Layout, o.Sheet.Encoding.WidthFlags()); err != nil {
			return fmt.Errorf("encode %s: %w", indexPath, err)
		}
	}

	if err := os.WriteFile(imagePath, imageBuf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Println("wrote atlas to", imagePath)

	if indexPath != "" {
		if err := os.WriteFile(indexPath, indexBuf.Bytes(), 0644); err != nil {
			return err
		}
		fmt.Println("wrote index to", indexPath)
	}
	return nil
}
