// This tool converts a PCM wav file into an aiff file and stores it in the
// same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/rawmedia"
	"github.com/cwbudde/rawmedia/wav"
	"github.com/go-audio/aiff"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	sourcePath := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *sourcePath == "" {
		return errMissingPath
	}

	buf, err := wav.Open(*sourcePath)
	if rawmedia.IsWarning(err) {
		log.Printf("warning: %v", err)
	} else if err != nil {
		return err
	}
	defer buf.Close()

	outPath := aiffPath(*sourcePath)

	err = convert(buf, outPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func aiffPath(sourcePath string) string {
	return sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"
}

func convert(buf *wav.Buffer, outPath string) (err error) {
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	defer func() {
		closeErr := outFile.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	cfg := buf.Config()
	encoder := aiff.NewEncoder(outFile, int(cfg.SampleHz), int(cfg.BitsPerSample), int(cfg.Channels))

	// aiff stores signed samples for every bit depth
	err = encoder.Write(buf.IntBuffer())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return encoder.Close()
}
