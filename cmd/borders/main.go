// Command borders prints the silhouette the game extracts from a PNG.
//
//	borders [-scale WxH] [-frame WxH] [-threshold N] [-out highlighted.png] sprite.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/automoto/tilerun/assets/animations"
	"github.com/automoto/tilerun/shared/border"
)

var highlight = color.NRGBA{255, 0, 255, 255}

func main() {
	scale := flag.String("scale", "", "scale the image (or each frame) to WxH before extracting")
	frame := flag.String("frame", "", "treat the image as a horizontal strip of WxH frames")
	threshold := flag.Uint("threshold", 0, "alpha above which a pixel is opaque (0-65535)")
	out := flag.String("out", "", "write a copy with the border highlighted")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	img, err := readPNG(flag.Arg(0))
	if err != nil {
		log.Fatalf("[borders] %v", err)
	}

	w, h, err := parseSize(*scale)
	if err != nil {
		log.Fatalf("[borders] -scale: %v", err)
	}

	var borders []*border.SpriteBorder
	if *frame != "" {
		fw, fh, err := parseSize(*frame)
		if err != nil || fw <= 0 || fh <= 0 {
			log.Fatalf("[borders] -frame: want WxH, got %q", *frame)
		}
		borders = animations.StripBorders(img, fw, fh, w, h, uint32(*threshold))
	} else {
		borders = []*border.SpriteBorder{
			border.Extract(border.ImageSampler{Image: border.Scale(img, w, h)}, uint32(*threshold)),
		}
	}

	for i, b := range borders {
		report(os.Stdout, i, b)
	}

	if *out != "" {
		if err := writeHighlighted(*out, img, borders, *frame != "", w, h); err != nil {
			log.Fatalf("[borders] %v", err)
		}
	}
}

func parseSize(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("negative size %q", s)
	}
	return w, h, nil
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func report(w io.Writer, i int, b *border.SpriteBorder) {
	fmt.Fprintf(w, "frame %d: %d points, rect %v, valid %t\n", i, b.Len(), b.Rect(), b.Valid())
	for side := border.Left; side <= border.Bottom; side++ {
		if p, ok := b.Bound(side); ok {
			fmt.Fprintf(w, "  %-6s %v\n", side, p)
		} else {
			fmt.Fprintf(w, "  %-6s none\n", side)
		}
	}
}

// writeHighlighted paints the border points over the (scaled) image. Frames
// of a strip are laid out left to right.
func writeHighlighted(path string, img image.Image, borders []*border.SpriteBorder, strip bool, w, h int) error {
	src := img
	if !strip {
		src = border.Scale(img, w, h)
	}
	bounds := src.Bounds()
	frameW := bounds.Dx()
	if strip && len(borders) > 0 {
		frameW = bounds.Dx() / len(borders)
		if w > 0 && h > 0 {
			frameW = w
			bounds = image.Rect(0, 0, w*len(borders), h)
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if bounds.Eq(src.Bounds()) {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	}
	for i, b := range borders {
		for _, p := range b.Points() {
			dst.Set(p.X+i*frameW, p.Y, highlight)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
