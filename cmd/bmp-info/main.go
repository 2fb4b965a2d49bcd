// This tool prints the config of the passed bitmap file.
package main

import (
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

	fmt.Fprintln(out, img.Config())

	return nil
}
