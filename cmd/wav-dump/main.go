// This tool prints the config and every sample of the passed wav file.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/rawmedia"
	"github.com/cwbudde/rawmedia/wav"
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

	buf, err := wav.Open(args[0])
	if rawmedia.IsWarning(err) {
		log.Printf("warning: %v", err)
	} else if err != nil {
		return err
	}
	defer buf.Close()

	cfg := buf.Config()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "channels        = %d\n", cfg.Channels)
	fmt.Fprintf(w, "samplehz        = %d\n", cfg.SampleHz)
	fmt.Fprintf(w, "bits_per_sample = %d\n", cfg.BitsPerSample)
	fmt.Fprintf(w, "size            = %d\n", cfg.FrameCount)

	for frame := range int(cfg.FrameCount) {
		for ch := range int(cfg.Channels) {
			v, err := buf.Sample(ch, frame)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%d  ", v)
		}

		fmt.Fprintln(w)
	}

	return w.Flush()
}
