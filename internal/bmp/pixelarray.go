package bmp

import (
	"fmt"
	"image"
	"image/color"
)

// PixelArray is a view of the pixel array inside a bitmap buffer. Writes
// through the view land in the buffer it was created from.
type PixelArray struct {
	// Pix holds the rows in the order they are stored in the file, each
	// row being Width pixels in B, G, R order followed by Padding bytes.
	// The pixel at (x, y) starts at Pix[y*Stride + x*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between adjacent rows.
	Stride int
	// Padding is the number of bytes after the last pixel of a row.
	Padding int

	width int
	rows  int
}

// NewPixelArray returns the view of buf described by h, after checking
// that the whole array (Stride * rows bytes starting at h.PixelArrayOffset)
// fits inside buf.
func NewPixelArray(buf []byte, h Header) (*PixelArray, error) {
	if h.Width < 0 {
		return nil, fmt.Errorf("%w: width %d is negative", ErrInvalidDimensions, h.Width)
	} else if h.Height < 0 {
		return nil, fmt.Errorf("%w: height %d is negative", ErrInvalidDimensions, h.Height)
	}

	size := int64(len(buf))
	offset := int64(h.PixelArrayOffset)
	if offset > size {
		return nil, fmt.Errorf("%w: pixel array offset %d is past the end of a %d byte buffer", ErrOutOfBounds, offset, size)
	}

	stride := h.Stride()
	rows := h.Rows()

	// stride*rows <= size-offset, without overflowing the product
	if rows > 0 && stride > (size-offset)/rows {
		return nil, fmt.Errorf("%w: %d rows of %d bytes at offset %d exceed a %d byte buffer", ErrOutOfBounds, rows, stride, offset, size)
	}

	end := offset + stride*rows
	return &PixelArray{
		Pix:     buf[offset:end:end],
		Stride:  int(stride),
		Padding: int(h.Padding()),
		width:   int(h.Width),
		rows:    int(rows),
	}, nil
}

// Width returns the number of pixels in a row.
func (p *PixelArray) Width() int { return p.width }

// Rows returns the number of rows.
func (p *PixelArray) Rows() int { return p.rows }

// Len returns the size of the pixel array in bytes, padding included.
func (p *PixelArray) Len() int { return len(p.Pix) }

// Row returns the pixel bytes of row y, without its padding. The returned
// slice aliases Pix and its capacity stops before the padding.
func (p *PixelArray) Row(y int) []uint8 {
	start := y * p.Stride
	end := start + p.width*BytesPerPixel
	return p.Pix[start:end:end]
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *PixelArray) PixOffset(x, y int) int {
	return y*p.Stride + x*BytesPerPixel
}

// PixelAt returns the pixel at column x of row y. Coordinates outside the
// array yield the zero Pixel.
func (p *PixelArray) PixelAt(x, y int) Pixel {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return Pixel{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return Pixel{B: s[0], G: s[1], R: s[2]}
}

// SetPixel overwrites the pixel at column x of row y. Coordinates outside
// the array are ignored.
func (p *PixelArray) SetPixel(x, y int, px Pixel) {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = px.B, px.G, px.R
}

func (p *PixelArray) ColorModel() color.Model { return color.RGBAModel }

// Bounds spans the rows in storage order, so for bottom-up bitmaps y=0 is
// the bottom row of the picture.
func (p *PixelArray) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.rows) }

func (p *PixelArray) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *PixelArray) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return color.RGBA{}
	}
	px := p.PixelAt(x, y)
	return color.RGBA{px.R, px.G, px.B, 255}
}
