// Filters perform per-pixel color manipulation on the pixel array of a
// bitmap, in place
package filters

import (
	"github.com/anas-shakeel/bmpfilter/internal/bmp"
	"github.com/anas-shakeel/bmpfilter/internal/utils"
)

// Mode selects the transform applied to every pixel.
type Mode int

const (
	// Threshold turns every pixel black or white.
	Threshold Mode = iota
	// Grayscale replaces every pixel by its average intensity.
	Grayscale
)

// ThresholdLevel is the lowest average intensity that becomes white.
const ThresholdLevel = 128

func (m Mode) String() string {
	switch m {
	case Grayscale:
		return "grayscale"
	case Threshold:
		return "threshold"
	}
	return "unknown"
}

func (m Mode) transform() func(bmp.Pixel) bmp.Pixel {
	if m == Grayscale {
		return GrayscalePixel
	}
	return ThresholdPixel
}

// Returns floor((B + G + R) / 3)
func AverageIntensity(p bmp.Pixel) byte {
	return byte(utils.Average(int(p.B), int(p.G), int(p.R)))
}

// Sets all three channels to the average intensity
func GrayscalePixel(p bmp.Pixel) bmp.Pixel {
	avg := AverageIntensity(p)
	return bmp.Pixel{B: avg, G: avg, R: avg}
}

// White (all channels 0xff) if the average intensity is at least
// ThresholdLevel, black (all channels 0x00) otherwise
func ThresholdPixel(p bmp.Pixel) bmp.Pixel {
	if AverageIntensity(p) >= ThresholdLevel {
		return bmp.Pixel{B: 0xff, G: 0xff, R: 0xff}
	}
	return bmp.Pixel{}
}

// ApplyToPixelArray transforms every pixel of pa in place and returns the
// number of pixels transformed. Padding bytes are left untouched.
func ApplyToPixelArray(pa *bmp.PixelArray, mode Mode) int {
	transform := mode.transform()
	count := 0

	// Iterate rows (in storage order)
	for y := 0; y < pa.Rows(); y++ {
		row := pa.Row(y)

		// Iterate pixels in row
		for i := 0; i+bmp.BytesPerPixel <= len(row); i += bmp.BytesPerPixel {
			p := transform(bmp.Pixel{B: row[i], G: row[i+1], R: row[i+2]})
			row[i], row[i+1], row[i+2] = p.B, p.G, p.R
			count++
		}
	}

	return count
}

// Apply locates the pixel array of the bitmap in buf and filters it in
// place. The located header is returned for reporting.
func Apply(buf []byte, mode Mode) (bmp.Header, error) {
	h, err := bmp.Locate(buf)
	if err != nil {
		return h, err
	}

	pa, err := bmp.NewPixelArray(buf, h)
	if err != nil {
		return h, err
	}

	ApplyToPixelArray(pa, mode)
	return h, nil
}
