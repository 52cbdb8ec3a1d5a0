package texture

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/logger"
)

// CubemapFaces is the number of images a cubemap takes, in the order
// +X, -X, +Y, -Y, +Z, -Z.
const CubemapFaces = 6

// Load2D decodes the image at path and uploads it as a mipmapped, repeating
// 2D texture. An empty path returns 0 quietly. A failed load is logged and
// also returns 0, which samples as black.
func Load2D(path string) uint32 {
	if path == "" {
		return 0
	}
	img, err := DecodeFile(path)
	if err != nil {
		logger.Warn("texture not loaded", zap.String("path", path), zap.Error(err))
		return 0
	}
	return upload2D(img, path)
}

// Load2DData is Load2D for an image already in memory. name is used for
// format detection and logging.
func Load2DData(data []byte, name string) uint32 {
	img, err := Decode(data, name)
	if err != nil {
		logger.Warn("texture not loaded", zap.String("name", name), zap.Error(err))
		return 0
	}
	return upload2D(img, name)
}

func upload2D(img image.Image, name string) uint32 {
	rgba := FlipVertical(ImageToRGBA(img))

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Debug("texture loaded",
		zap.String("name", name),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()),
	)
	return tex
}

// LoadCubemap uploads six face images as a cubemap texture. Faces are not
// flipped: cubemap lookups use a top-left origin. Any missing face fails
// the whole cubemap, which is logged and returns 0.
func LoadCubemap(faces []string) uint32 {
	if len(faces) == 0 {
		return 0
	}
	if len(faces) != CubemapFaces {
		logger.Warn("cubemap not loaded", zap.Error(fmt.Errorf("need %d faces, got %d", CubemapFaces, len(faces))))
		return 0
	}

	// Decode everything before touching GL so a bad face leaves no
	// half-built texture behind.
	images := make([][]byte, CubemapFaces)
	sizes := make([][2]int32, CubemapFaces)
	for i, path := range faces {
		img, err := DecodeFile(path)
		if err != nil {
			logger.Warn("cubemap not loaded", zap.Int("face", i), zap.String("path", path), zap.Error(err))
			return 0
		}
		rgba := ImageToRGBA(img)
		images[i] = rgba.Pix
		sizes[i] = [2]int32{int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy())}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	for i := range images {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			sizes[i][0], sizes[i][1],
			0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(images[i]))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	logger.Debug("cubemap loaded", zap.Strings("faces", faces))
	return tex
}

// Delete releases a texture handle. Zero is ignored.
func Delete(tex uint32) {
	if tex == 0 {
		return
	}
	gl.DeleteTextures(1, &tex)
}

// Solid creates a 1x1 texture of one color, used where a mesh has no
// texture of its own.
func Solid(r, g, b, a uint8) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	pixel := []uint8{r, g, b, a}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixel))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
