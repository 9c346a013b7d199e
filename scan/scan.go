// Package scan reports statistics that hint at hidden data in a cover.
// It only reads: no function here ever mutates an image.
//
// Two heuristics are combined. The header sniff decodes the first 32 sample
// LSBs as a framing length and checks whether that length is plausible for
// the cover's capacity. The chi-square test measures how evenly sample
// values are distributed across LSB pairs: sequential LSB embedding flattens
// each (2k, 2k+1) pair, which natural images rarely do.
package scan

import (
	"image"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yyyoichi/stegozero/internal/frame"
	"github.com/yyyoichi/stegozero/internal/lsb"
	"github.com/yyyoichi/stegozero/internal/pixmap"
)

// Report summarizes the scan of one image.
type Report struct {
	// CapacityBits is the sequential LSB capacity of the image.
	CapacityBits int
	// HeaderLength is the payload byte count the first 32 LSBs decode to.
	HeaderLength int
	// HeaderPlausible is true when HeaderLength is non-zero and fits the
	// capacity, the signature of a sequentially embedded frame.
	HeaderPlausible bool
	// ChiSquare is the statistic of the LSB pair test and EmbedProbability
	// its right-tail complement: values near 1 mean the LSB plane looks
	// artificially flat.
	ChiSquare        float64
	EmbedProbability float64
	// Suspicious is the overall verdict. It is a heuristic, not proof.
	Suspicious bool
}

// Image scans src for traces of sequential LSB embedding.
func Image(src image.Image) Report {
	p := pixmap.FromImage(src)
	var r Report
	r.CapacityBits = lsb.Capacity(p.Samples(), 1)

	if r.CapacityBits >= frame.HeaderBits {
		head := lsb.Extract(p.Pix, frame.HeaderBits, 1)
		n, err := frame.ParseHeader(head)
		if err == nil {
			r.HeaderLength = n
			r.HeaderPlausible = n > 0 && frame.Bits(n, false) <= r.CapacityBits
		}
	}
	r.ChiSquare, r.EmbedProbability = pairChiSquare(p.Pix)
	r.Suspicious = r.HeaderPlausible
	return r
}

// pairChiSquare runs the classic chi-square attack over the histogram of
// sample values: observed counts of even values against the pairwise means
// expected under full LSB embedding.
func pairChiSquare(samples []uint8) (statistic, probability float64) {
	var hist [256]float64
	for _, v := range samples {
		hist[v]++
	}
	var obs, exp []float64
	for k := 0; k < 256; k += 2 {
		mean := (hist[k] + hist[k+1]) / 2
		if mean == 0 {
			continue
		}
		obs = append(obs, hist[k])
		exp = append(exp, mean)
	}
	if len(obs) < 2 {
		return 0, 0
	}
	statistic = stat.ChiSquare(obs, exp)
	dist := distuv.ChiSquared{K: float64(len(obs) - 1)}
	probability = 1 - dist.CDF(statistic)
	return statistic, probability
}
