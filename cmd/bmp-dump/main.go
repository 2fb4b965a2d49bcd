// This tool prints the color of every pixel of the passed bitmap file.
package main

import (
	"bufio"
	"errors"
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
	if len(args) < 1 {
		return errMissingPath
	}

	img, err := bmp.Open(args[0])
	if err != nil {
		return err
	}
	defer img.Close()

	cfg := img.Config()

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, cfg)

	for y := range int(cfg.Height) {
		for x := range int(cfg.Width) {
			color, err := img.Color(x, y)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "(%d, %d) = %d\n", x, y, color)
		}
	}

	return w.Flush()
}
