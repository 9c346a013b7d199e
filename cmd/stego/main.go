// Command stego embeds, extracts and scans hidden payloads in PNG/JPEG
// images, WAV audio and plain-text files.
//
//	stego -embed -mode lsb -in cover.png -payload secret.txt -out stego.png
//	stego -extract -mode lsb -in stego.png -out secret.txt
//	stego -embed -mode adaptive -key hunter2 -in cover.png -payload secret.txt -out stego.png
//	stego -scan -in suspect.png
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	_ "image/jpeg"
	"image/png"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	stego "github.com/yyyoichi/stegozero"
	"github.com/yyyoichi/stegozero/scan"
)

func main() {
	var (
		embedOp   = flag.Bool("embed", false, "hide a payload in the input cover")
		extractOp = flag.Bool("extract", false, "recover a payload from the input file")
		scanOp    = flag.Bool("scan", false, "report hidden-data statistics for the input file")
		mode      = flag.String("mode", "lsb", "lsb | image | adaptive | dct | audio | text")
		in        = flag.String("in", "", "cover or stego file")
		out       = flag.String("out", "", "output file")
		payload   = flag.String("payload", "", "payload file (embed only; an image file in image mode)")
		key       = flag.String("key", "", "channel-selection key (adaptive mode only)")
		depth     = flag.Int("depth", 1, "low bits per sample (lsb and audio modes)")
		ecc       = flag.Bool("ecc", false, "protect payload bits with a Golay code")
	)
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*embedOp, *extractOp, *scanOp, *mode, *in, *out, *payload, *key, *depth, *ecc); err != nil {
		log.Fatal(err)
	}
}

func run(embedOp, extractOp, scanOp bool, modeName, in, out, payloadPath, key string, depth int, ecc bool) error {
	kind, err := detectFileType(in)
	if err != nil {
		return err
	}
	log.Printf("detected file type: %s", kind)

	mode, err := stego.ParseMode(modeName)
	if err != nil {
		return err
	}
	opts := []stego.Option{stego.WithLSBDepth(depth)}
	if ecc {
		opts = append(opts, stego.WithECC())
	}
	s, err := stego.New(opts...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch {
	case scanOp:
		if kind != "png" && kind != "jpeg" {
			return fmt.Errorf("scan supports image files only, got %s", kind)
		}
		img, err := loadImage(in)
		if err != nil {
			return err
		}
		report := scan.Image(img)
		fmt.Printf("capacity: %d bits\n", report.CapacityBits)
		fmt.Printf("header length: %d bytes (plausible: %v)\n", report.HeaderLength, report.HeaderPlausible)
		fmt.Printf("chi-square: %.2f (embed probability: %.3f)\n", report.ChiSquare, report.EmbedProbability)
		fmt.Printf("suspicious: %v\n", report.Suspicious)
		return nil
	case embedOp:
		if out == "" || payloadPath == "" {
			return fmt.Errorf("embed requires -out and -payload")
		}
		return embed(ctx, s, mode, in, out, payloadPath, key)
	case extractOp:
		if out == "" {
			return fmt.Errorf("extract requires -out")
		}
		return extract(ctx, s, mode, in, out, key)
	}
	return fmt.Errorf("no operation: pass -embed, -extract or -scan")
}

func embed(ctx context.Context, s *stego.Stego, mode stego.Mode, in, out, payloadPath, key string) error {
	switch mode {
	case stego.ModeLSB, stego.ModeAdaptive, stego.ModeDCT:
		cover, err := loadImage(in)
		if err != nil {
			return err
		}
		payload, err := os.ReadFile(payloadPath)
		if err != nil {
			return err
		}
		var stegoImg image.Image
		switch mode {
		case stego.ModeLSB:
			stegoImg, err = s.EmbedLSB(ctx, cover, payload)
		case stego.ModeAdaptive:
			stegoImg, err = s.EmbedAdaptive(ctx, cover, payload, key)
		case stego.ModeDCT:
			stegoImg, err = s.EmbedDCT(ctx, cover, payload)
		}
		if err != nil {
			return err
		}
		return saveImage(out, stegoImg)
	case stego.ModeImage:
		cover, err := loadImage(in)
		if err != nil {
			return err
		}
		secret, err := loadImage(payloadPath)
		if err != nil {
			return err
		}
		stegoImg, err := s.EmbedImage(ctx, cover, secret)
		if err != nil {
			return err
		}
		return saveImage(out, stegoImg)
	case stego.ModeAudio:
		clip, err := loadWAV(in)
		if err != nil {
			return err
		}
		payload, err := os.ReadFile(payloadPath)
		if err != nil {
			return err
		}
		samples, err := s.EmbedAudio(ctx, clip.Data, payload)
		if err != nil {
			return err
		}
		return saveWAV(out, clip, samples)
	case stego.ModeText:
		cover, err := os.ReadFile(in)
		if err != nil {
			return err
		}
		payload, err := os.ReadFile(payloadPath)
		if err != nil {
			return err
		}
		stegoText, err := s.EmbedText(ctx, cover, payload)
		if err != nil {
			return err
		}
		return os.WriteFile(out, stegoText, 0o644)
	}
	return fmt.Errorf("unhandled mode %s", mode)
}

func extract(ctx context.Context, s *stego.Stego, mode stego.Mode, in, out, key string) error {
	switch mode {
	case stego.ModeLSB, stego.ModeAdaptive, stego.ModeDCT:
		src, err := loadImage(in)
		if err != nil {
			return err
		}
		var payload []byte
		switch mode {
		case stego.ModeLSB:
			payload, err = s.ExtractLSB(ctx, src)
		case stego.ModeAdaptive:
			payload, err = s.ExtractAdaptive(ctx, src, key)
		case stego.ModeDCT:
			payload, err = s.ExtractDCT(ctx, src)
		}
		if err != nil {
			return err
		}
		return os.WriteFile(out, payload, 0o644)
	case stego.ModeImage:
		src, err := loadImage(in)
		if err != nil {
			return err
		}
		secret, err := s.ExtractImage(ctx, src)
		if err != nil {
			return err
		}
		return saveImage(out, secret)
	case stego.ModeAudio:
		clip, err := loadWAV(in)
		if err != nil {
			return err
		}
		payload, err := s.ExtractAudio(ctx, clip.Data)
		if err != nil {
			return err
		}
		return os.WriteFile(out, payload, 0o644)
	case stego.ModeText:
		stegoText, err := os.ReadFile(in)
		if err != nil {
			return err
		}
		payload, err := s.ExtractText(ctx, stegoText)
		if err != nil {
			return err
		}
		return os.WriteFile(out, payload, 0o644)
	}
	return fmt.Errorf("unhandled mode %s", mode)
}

// detectFileType sniffs the magic number of the file at path.
func detectFileType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	sig := make([]byte, 8)
	n, _ := f.Read(sig)
	sig = sig[:n]
	switch {
	case bytes.HasPrefix(sig, []byte("\x89PNG")):
		return "png", nil
	case bytes.HasPrefix(sig, []byte{0xff, 0xd8}):
		return "jpeg", nil
	case bytes.HasPrefix(sig, []byte("RIFF")):
		return "wav", nil
	}
	return "text", nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// saveImage always writes PNG: a lossy container would destroy the low-bit
// payload.
func saveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func loadWAV(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func saveWAV(path string, src *audio.IntBuffer, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := wav.NewEncoder(f, src.Format.SampleRate, src.SourceBitDepth, src.Format.NumChannels, 1)
	out := &audio.IntBuffer{
		Format:         src.Format,
		SourceBitDepth: src.SourceBitDepth,
		Data:           samples,
	}
	if err := enc.Write(out); err != nil {
		return err
	}
	return enc.Close()
}
