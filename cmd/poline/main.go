// Command poline generates a color palette and prints it as CSS hsl()
// strings, one per line. With -out it also renders the palette as a
// horizontal PNG swatch strip.
//
// Anchors are given as semicolon-separated h,s,l triples; with no -anchors a
// random pair is drawn from -seed.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/irfansharif/poline"
)

const logFlags = log.Ltime | log.Lshortfile

var (
	points   = flag.Int("points", poline.DefaultNumPoints, "points per segment, endpoints included")
	closed   = flag.Bool("closed", false, "connect the last anchor back to the first")
	inverted = flag.Bool("inverted", false, "use the 1-lightness polar radius convention")
	easing   = flag.String("easing", "sinusoidal", "easing curve: linear, quadratic, cubic, quartic, quintic, sinusoidal, asinusoidal, arc, smoothstep")
	anchors  = flag.String("anchors", "", "semicolon-separated h,s,l anchors, e.g. '20,0.8,0.5;240,0.7,0.6' (random pair when empty)")
	seed     = flag.Int64("seed", 0, "seed for random anchor generation (current time when 0)")
	hex      = flag.Bool("hex", false, "print #rrggbb instead of hsl() strings")
	out      = flag.String("out", "", "write a PNG swatch strip to this file")
	swatch   = flag.Int("swatch", 64, "swatch square size in pixels for -out")
)

func main() {
	log.SetFlags(logFlags)
	flag.Parse()

	fn, ok := poline.TransformerByName(*easing)
	if !ok {
		log.Fatalf("Unknown easing function: %q", *easing)
	}

	anchorColors, err := parseAnchors(*anchors)
	if err != nil {
		log.Fatalf("Failed to parse anchors: %v", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	p, err := poline.New(poline.Options{
		AnchorColors: anchorColors,
		NumPoints:    *points,
		PositionFn:   fn,
		ClosedLoop:   *closed,
		Inverted:     *inverted,
		Rand:         rand.New(rand.NewSource(s)),
	})
	if err != nil {
		log.Fatalf("Failed to construct palette: %v", err)
	}

	lines := p.ColorsCSS()
	if *hex {
		lines = p.ColorsHex()
	}
	for _, line := range lines {
		fmt.Println(line)
	}

	if *out != "" {
		if err := writeSwatch(*out, p.Colors(), *swatch); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
	}
}

func parseAnchors(s string) ([]poline.Hsl, error) {
	if s == "" {
		return nil, nil
	}

	var anchorColors []poline.Hsl
	for _, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("anchor %q: expected h,s,l", part)
		}
		var hsl [3]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("anchor %q: %w", part, err)
			}
			hsl[i] = v
		}
		anchorColors = append(anchorColors, poline.MakeHsl(hsl[0], hsl[1], hsl[2]))
	}
	return anchorColors, nil
}

// writeSwatch renders one filled square per palette color into a horizontal
// strip and encodes it as PNG.
func writeSwatch(path string, colors []poline.Hsl, size int) error {
	img := image.NewRGBA(image.Rect(0, 0, size*len(colors), size))
	for i, c := range colors {
		r, g, b := c.RGB255()
		cell := image.Rect(i*size, 0, (i+1)*size, size)
		draw.Draw(img, cell, image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 255}), image.Point{}, draw.Src)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
