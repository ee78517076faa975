package render

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
)

// encodeICO writes a multi-resolution ICO container with PNG-encoded
// payloads, which every modern browser accepts. Images wider than 255
// pixels use the ICO convention of a zero width/height byte.
func encodeICO(w io.Writer, images []image.Image) error {
	n := len(images)
	if n == 0 {
		return fmt.Errorf("no images to encode")
	}

	pngs := make([][]byte, n)
	for i, img := range images {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("failed to encode entry %d: %w", i, err)
		}
		pngs[i] = buf.Bytes()
	}

	// Header: reserved, type (1 = icon), image count.
	if err := binary.Write(w, binary.LittleEndian, [3]uint16{0, 1, uint16(n)}); err != nil {
		return err
	}

	// Directory entries.
	offset := uint32(6 + n*16)
	for i, img := range images {
		bounds := img.Bounds()
		wb := uint8(bounds.Dx())
		hb := uint8(bounds.Dy())
		if bounds.Dx() >= 256 {
			wb = 0
		}
		if bounds.Dy() >= 256 {
			hb = 0
		}

		entry := struct {
			Width, Height, Palette, Reserved uint8
			Planes, BitsPerPixel             uint16
			Size, Offset                     uint32
		}{
			Width:        wb,
			Height:       hb,
			Planes:       1,
			BitsPerPixel: 32,
			Size:         uint32(len(pngs[i])),
			Offset:       offset,
		}
		if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += uint32(len(pngs[i]))
	}

	// Image data.
	for _, p := range pngs {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}
