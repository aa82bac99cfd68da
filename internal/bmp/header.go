package bmp

import (
	"encoding/binary"
	"fmt"
)

// Header holds the header fields needed to find and walk the pixel array.
// Nothing else in the file header or the DIB header is interpreted.
type Header struct {
	PixelArrayOffset uint32 // Offset (in bytes) from the start of the file to the pixel array
	Width            int32  // Width in pixels
	Height           int32  // Height in pixels (rows)
}

// Locate reads the pixel array offset, width and height from their fixed
// positions in buf. The values are returned as declared; NewPixelArray
// checks them against the buffer.
func Locate(buf []byte) (Header, error) {
	if len(buf) < MinHeaderLen {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, buffer holds %d", ErrOutOfBounds, MinHeaderLen, len(buf))
	}

	return Header{
		PixelArrayOffset: binary.LittleEndian.Uint32(buf[offBitsPos : offBitsPos+4]),
		Width:            int32(binary.LittleEndian.Uint32(buf[widthPos : widthPos+4])),
		Height:           int32(binary.LittleEndian.Uint32(buf[heightPos : heightPos+4])),
	}, nil
}

// Rows returns the number of stored rows.
func (h Header) Rows() int64 {
	return int64(h.Height)
}

// Padding returns the number of bytes trailing the pixels of every row.
//
// For 3-byte pixels width%4 is the same value as the usual
// (4 - width*3%4) % 4 alignment rule.
func (h Header) Padding() int64 {
	return int64(h.Width) % 4
}

// Stride returns the total bytes in a row (incl. padding).
func (h Header) Stride() int64 {
	return int64(h.Width)*BytesPerPixel + h.Padding()
}
