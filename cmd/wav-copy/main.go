// This tool copies a wav file sample by sample into a new file.
package main

import (
	"errors"
	"flag"
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
	flagSet := flag.NewFlagSet("wav-copy", flag.ContinueOnError)

	output := flagSet.String("output", "wav_copy.wav", "filename to write to")
	strict := flagSet.Bool("strict", false, "reject files whose data size doesn't match the format")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	src := wav.New()

	if *strict {
		err = src.LoadStrict(flagSet.Arg(0))
	} else {
		err = src.Load(flagSet.Arg(0))
	}

	if rawmedia.IsWarning(err) {
		log.Printf("warning: %v", err)
	} else if err != nil {
		return err
	}
	defer src.Close()

	cfg := src.Config()
	fmt.Fprintln(out, cfg)

	dst := wav.New()

	err = dst.Configure(cfg)
	if err != nil {
		return fmt.Errorf("error configuring copy: %w", err)
	}
	defer dst.Close()

	for ch := range int(cfg.Channels) {
		for frame := range int(cfg.FrameCount) {
			v, err := src.Sample(ch, frame)
			if err != nil {
				return err
			}

			err = dst.SetSample(ch, frame, v)
			if err != nil {
				return err
			}
		}
	}

	return dst.Save(*output)
}
