// Package bmp serializes a framebuffer as an uncompressed 24-bit BMP image.
package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/renderer"
)

const (
	fileHeaderSize  = 14
	infoHeaderSize  = 40
	pixelDataOffset = fileHeaderSize + infoHeaderSize
	bytesPerPixel   = 3

	signature = 0x4D42 // "BM"
)

// fileHeader is the 14-byte BMP file header, packed little-endian
type fileHeader struct {
	Signature  uint16
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

// infoHeader is the 40-byte BMP info header, packed little-endian
type infoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// Encode serializes the framebuffer as an uncompressed 24-bit BMP. Rows are
// written bottom-to-top (last framebuffer row first) in blue, green, red
// byte order. Rows are not padded to a 4-byte boundary; the stride is
// already 4-byte aligned at the default render width.
func Encode(w io.Writer, fb *renderer.Framebuffer) error {
	imageSize := fb.Width * fb.Height * bytesPerPixel

	header := fileHeader{
		Signature:  signature,
		FileSize:   uint32(pixelDataOffset + imageSize),
		DataOffset: pixelDataOffset,
	}
	info := infoHeader{
		HeaderSize:   infoHeaderSize,
		Width:        int32(fb.Width),
		Height:       int32(fb.Height),
		Planes:       1,
		BitsPerPixel: 24,
		ImageSize:    uint32(imageSize),
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("writing file header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, info); err != nil {
		return fmt.Errorf("writing info header: %w", err)
	}

	row := make([]byte, fb.Width*bytesPerPixel)
	for j := fb.Height - 1; j >= 0; j-- {
		for i := 0; i < fb.Width; i++ {
			pixel := fb.At(i, j)
			row[i*bytesPerPixel+0] = colorByte(pixel.Z) // blue
			row[i*bytesPerPixel+1] = colorByte(pixel.Y) // green
			row[i*bytesPerPixel+2] = colorByte(pixel.X) // red
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("writing pixel row %d: %w", j, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing pixel data: %w", err)
	}
	return nil
}

// colorByte maps a color component to an 8-bit channel value. Components
// are clamped to [0, 1] before scaling: shading can overshoot the unit
// range and Go leaves out-of-range float-to-integer conversion undefined.
func colorByte(c float64) uint8 {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return uint8(255.999 * c)
}
