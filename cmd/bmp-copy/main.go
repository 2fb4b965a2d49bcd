// This tool copies a bitmap pixel by pixel into a new file, optionally
// halving every color level.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/rawmedia/bmp"
)

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("bmp-copy", flag.ContinueOnError)

	output := flagSet.String("output", "bmp_copy.bmp", "filename to write to")
	half := flagSet.Bool("half", false, "halve each color level of the copy")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	src, err := bmp.Open(flagSet.Arg(0))
	if err != nil {
		return err
	}
	defer src.Close()

	cfg := src.Config()
	fmt.Fprintln(out, cfg)

	dst := bmp.New()

	err = dst.Configure(cfg)
	if err != nil {
		return fmt.Errorf("error configuring copy: %w", err)
	}
	defer dst.Close()

	for y := range int(cfg.Height) {
		for x := range int(cfg.Width) {
			color, err := src.Color(x, y)
			if err != nil {
				return err
			}

			if *half {
				color = halve(color)
			}

			err = dst.SetColor(x, y, color)
			if err != nil {
				return err
			}
		}
	}

	return dst.Save(*output)
}

func halve(color uint32) uint32 {
	return bmp.RGB(bmp.Red(color)/2, bmp.Green(color)/2, bmp.Blue(color)/2)
}
