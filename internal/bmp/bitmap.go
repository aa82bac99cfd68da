// bmp package locates and exposes the pixel array of 24-bit uncompressed bitmaps
package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
)

type Pixel struct {
	B, G, R byte
}

// Returns the Pixels in bytes as BGR (Blue, Green, Red)
func (p Pixel) BytesBGR() []byte {
	return []byte{p.B, p.G, p.R}
}

// Creates a complete bitmap file (24 bit uncompressed) in memory, with every
// pixel and padding byte set to zero.
func NewBuffer(width, height int) ([]byte, error) {
	if width <= 0 {
		return nil, errors.New("width must be greater than 0")
	} else if height <= 0 {
		return nil, errors.New("height must be greater than 0")
	}

	bitsPerPixel := 24
	stride := ((width*bitsPerPixel + 31) / 32) * 4
	biSizeImage := uint32(stride * height)
	fileSize := (FileHeaderSize + InfoHeaderSize + biSizeImage) // Size of the whole bitmap file

	bfh := BitmapFileHeader{Type: [2]byte{0x42, 0x4d}, OffBits: FileHeaderSize + InfoHeaderSize, Size: fileSize}
	bih := BitmapInfoHeader{Size: InfoHeaderSize, Width: int32(width), Height: int32(height), Planes: 1, BitCount: 24, SizeImage: biSizeImage}

	buf := bytes.NewBuffer(make([]byte, 0, fileSize))

	// Write File Header
	if err := binary.Write(buf, binary.LittleEndian, &bfh); err != nil {
		return nil, err
	}
	// Write Info Header
	if err := binary.Write(buf, binary.LittleEndian, &bih); err != nil {
		return nil, err
	}

	// Pixel array (incl. padding)
	buf.Write(make([]byte, biSizeImage))

	return buf.Bytes(), nil
}
