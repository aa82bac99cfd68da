// BMP-specific structs, sizes and field positions
package bmp

const (
	FileHeaderSize = 14 // Size of BitmapFileHeader on disk
	InfoHeaderSize = 40 // Size of BitmapInfoHeader on disk
	BytesPerPixel  = 3  // 24-bit pixels: Blue, Green, Red

	// Absolute positions (in bytes, from the start of the file) of the only
	// header fields Locate reads, all 4-byte little-endian integers. The
	// info header starts right after the 14 byte file header.
	offBitsPos = 10                 // BitmapFileHeader.OffBits (unsigned)
	widthPos   = FileHeaderSize + 4 // BitmapInfoHeader.Width (signed, must not be negative)
	heightPos  = FileHeaderSize + 8 // BitmapInfoHeader.Height (signed, must not be negative)

	// MinHeaderLen is the smallest buffer that holds every field Locate reads.
	MinHeaderLen = heightPos + 4
)

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}
