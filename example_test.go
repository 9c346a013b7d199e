package stego_test

import (
	"context"
	"fmt"
	"image"
	"image/color"

	stego "github.com/yyyoichi/stegozero"
)

func Example() {
	cover := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			cover.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 4), G: uint8(y * 4), B: uint8(x + y), A: 0xff,
			})
		}
	}

	s, err := stego.New()
	if err != nil {
		panic(err)
	}
	ctx := context.Background()
	stegoImage, err := s.EmbedLSB(ctx, cover, []byte("meet at midnight"))
	if err != nil {
		panic(err)
	}
	payload, err := s.ExtractLSB(ctx, stegoImage)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(payload))
	// Output: meet at midnight
}
