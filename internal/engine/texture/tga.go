// Package texture decodes image files and uploads them as OpenGL textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeGray         = 3  // Uncompressed grayscale
	TGATypeRLE          = 10 // RLE compressed true-color
	TGATypeRLEGray      = 11 // RLE compressed grayscale
)

const (
	tgaHeaderSize  = 18
	tgaTopToBottom = 0x20
)

var errTGATruncated = errors.New("TGA pixel data truncated")

// DecodeTGA decodes a TGA image file.
// Supports true-color (24/32 bit) and grayscale (8 bit) images, raw or RLE.
// Color-mapped images are rejected.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}

	var gray, rle bool
	switch imageType {
	case TGATypeUncompressed:
	case TGATypeRLE:
		rle = true
	case TGATypeGray:
		gray = true
	case TGATypeRLEGray:
		gray, rle = true, true
	default:
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}

	if gray && bpp != 8 {
		return nil, fmt.Errorf("unsupported grayscale TGA bit depth %d", bpp)
	}
	if !gray && bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("TGA has empty size %dx%d", width, height)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	d := &tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		bytesPer:    bpp / 8,
		topToBottom: descriptor&tgaTopToBottom != 0,
	}

	var err error
	if rle {
		err = d.decodeRLE()
	} else {
		err = d.decodeRaw()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

// tgaDecoder walks TGA pixel data in file order and writes it into an
// image with a top-left origin.
type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int
	width       int
	height      int
	bytesPer    int
	topToBottom bool
	pixel       int
}

// readColor reads one pixel in BGR(A) or gray order.
func (d *tgaDecoder) readColor() (color.RGBA, bool) {
	if d.pos+d.bytesPer > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos : d.pos+d.bytesPer]
	d.pos += d.bytesPer

	switch d.bytesPer {
	case 1:
		return color.RGBA{R: p[0], G: p[0], B: p[0], A: 255}, true
	case 3:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}, true
	default:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}, true
	}
}

// put stores c at the next pixel. TGA rows run bottom-up unless the
// descriptor says otherwise.
func (d *tgaDecoder) put(c color.RGBA) {
	x := d.pixel % d.width
	y := d.pixel / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.pixel++
}

func (d *tgaDecoder) total() int {
	return d.width * d.height
}

func (d *tgaDecoder) decodeRaw() error {
	if len(d.src) < d.total()*d.bytesPer {
		return errTGATruncated
	}
	for d.pixel < d.total() {
		c, _ := d.readColor()
		d.put(c)
	}
	return nil
}

// decodeRLE decodes run-length packets. A stream that ends early leaves the
// remaining pixels transparent.
func (d *tgaDecoder) decodeRLE() error {
	for d.pixel < d.total() && d.pos < len(d.src) {
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := d.readColor()
			if !ok {
				break
			}
			for i := 0; i < count && d.pixel < d.total(); i++ {
				d.put(c)
			}
			continue
		}

		for i := 0; i < count && d.pixel < d.total(); i++ {
			c, ok := d.readColor()
			if !ok {
				break
			}
			d.put(c)
		}
	}
	return nil
}
