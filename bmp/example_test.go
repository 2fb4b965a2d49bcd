package bmp_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/cwbudde/rawmedia/bmp"
)

func ExampleImage_SetColor() {
	img := bmp.New()
	defer img.Close()

	err := img.Configure(bmp.Config{Width: 2, Height: 2, BitsPerPixel: 24})
	if err != nil {
		log.Fatal(err)
	}

	_ = img.SetColor(0, 0, bmp.RGB(255, 0, 0))
	_ = img.SetColor(1, 1, bmp.RGB(0, 0, 255))

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		log.Fatal(err)
	}

	decoded, err := bmp.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		log.Fatal(err)
	}

	for y := range 2 {
		for x := range 2 {
			c, _ := decoded.Color(x, y)
			fmt.Printf("(%d, %d) = %06x\n", x, y, c)
		}
	}
	// Output:
	// (0, 0) = ff0000
	// (1, 0) = ffffff
	// (0, 1) = ffffff
	// (1, 1) = 0000ff
}
