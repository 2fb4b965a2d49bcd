// This tool creates a white bitmap and draws a red frame with a cross.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/rawmedia/bmp"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("bmp-draw", flag.ContinueOnError)

	output := flagSet.String("output", "bmp_draw.bmp", "filename to write to")
	size := flagSet.Uint("size", 100, "width and height of the image in pixels")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	img := bmp.New()

	cfg := bmp.Config{Width: uint32(*size), Height: uint32(*size), BitsPerPixel: bmp.BitsPerPixel}

	err = img.Configure(cfg)
	if err != nil {
		return fmt.Errorf("error configuring image: %w", err)
	}
	defer img.Close()

	fmt.Fprintln(out, cfg)

	err = drawFramedCross(img)
	if err != nil {
		return err
	}

	return img.Save(*output)
}

func drawFramedCross(img *bmp.Image) error {
	red := bmp.RGB(255, 0, 0)
	n := int(img.Config().Width)

	for i := range n {
		points := [][2]int{
			{0, i}, {n - 1, i},
			{i, 0}, {i, n - 1},
			{i, i}, {n - 1 - i, i},
		}

		for _, p := range points {
			err := img.SetColor(p[0], p[1], red)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
