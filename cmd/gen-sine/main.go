package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/rawmedia/wav"
)

const sampleRate = 48000

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	bits := flagSet.Uint("bits", 16, "bits per sample, 8 or 16")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	buf := wav.New()

	err = buf.Configure(wav.Config{
		Channels:      1,
		SampleHz:      sampleRate,
		BitsPerSample: uint32(*bits),
		FrameCount:    uint32(sampleRate * *length),
	})
	if err != nil {
		return fmt.Errorf("error configuring buffer: %w", err)
	}
	defer buf.Close()

	for i := range int(buf.Config().FrameCount) {
		fv := math.Sin(float64(i) / sampleRate * *frequency * 2 * math.Pi)

		err := buf.SetSample(0, i, sineSample(fv, *bits))
		if err != nil {
			return err
		}
	}

	err = buf.Save(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}

	return nil
}

// sineSample maps a value in [-1, 1] to a raw sample: unsigned with a 128
// center for 8 bits, two's complement for 16 bits.
func sineSample(v float64, bits uint) uint16 {
	if bits == 8 {
		return uint16(math.Round(v*127) + 128)
	}

	return uint16(int16(math.Round(v * 32767)))
}
