// Package imaging converts uploaded question images to a compressed web
// format and manages the files under the static directory. Sources with
// transparency are re-encoded losslessly as PNG; opaque sources become JPEG.
package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/logger"

	"go.uber.org/zap"

	_ "image/gif"

	_ "golang.org/x/image/webp"
)

const jpegQuality = 80

const uploadsSubdir = "uploads"

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// AllowedExtension reports whether a filename carries an accepted image
// extension.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// LocalStore writes converted images below staticDir/uploads and records
// paths relative to staticDir.
type LocalStore struct {
	staticDir string
}

// NewLocalStore creates a store rooted at staticDir.
func NewLocalStore(staticDir string) *LocalStore {
	return &LocalStore{staticDir: staticDir}
}

// Save implements domain.ImageStore. The stored filename is the sanitized
// original base plus the creation timestamp, so re-uploads never collide.
func (s *LocalStore) Save(r io.Reader, originalName string) (string, error) {
	if !AllowedExtension(originalName) {
		return "", domain.NewValidationError(fmt.Sprintf("file extension of %q is not allowed", originalName))
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", domain.NewImageProcessingError(err)
	}

	base := sanitizeBase(originalName)
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	ext := ".jpg"
	if hasTransparency(img) {
		ext = ".png"
	}
	filename := base + "_" + timestamp + ext

	uploadDir := filepath.Join(s.staticDir, uploadsSubdir)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", domain.NewImageProcessingError(err)
	}

	fullPath := filepath.Join(uploadDir, filename)
	f, err := os.Create(fullPath)
	if err != nil {
		return "", domain.NewImageProcessingError(err)
	}

	if ext == ".png" {
		err = (&png.Encoder{CompressionLevel: png.BestCompression}).Encode(f, img)
	} else {
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Partially written output must not survive a failed conversion.
		if removeErr := os.Remove(fullPath); removeErr != nil {
			logger.Get().Warn("failed to remove partial image file",
				zap.String("path", fullPath), zap.Error(removeErr))
		}
		return "", domain.NewImageProcessingError(err)
	}

	return path.Join(uploadsSubdir, filename), nil
}

// Remove implements domain.ImageStore.
func (s *LocalStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	fullPath := filepath.Join(s.staticDir, filepath.FromSlash(relPath))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// sanitizeBase strips the extension and any filesystem-unsafe characters from
// the original filename.
func sanitizeBase(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = unsafeFilenameChars.ReplaceAllString(base, "")
	if base == "" {
		base = "image"
	}
	return base
}

// hasTransparency reports whether any pixel of the image is not fully opaque.
func hasTransparency(img image.Image) bool {
	type opaquer interface {
		Opaque() bool
	}
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
