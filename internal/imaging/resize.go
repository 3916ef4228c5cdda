// Package imaging produces the card thumbnails served next to the client.
// Every image in a source directory is scaled to one of two fixed
// resolutions, picked by orientation, and written as JPEG.
package imaging

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/nfnt/resize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Size is a target resolution in pixels
type Size struct {
	Width  int
	Height int
}

// Stats counts what a Resize run did
type Stats struct {
	Resized int
	Skipped int
}

// Resizer scales a directory of card images. The zero value is not usable;
// start from NewResizer.
type Resizer struct {
	Workers   int // 0 means one per CPU
	Quality   int
	Landscape Size
	Portrait  Size
	Logger    *zap.Logger
}

// NewResizer returns a resizer with the standard card resolutions
func NewResizer() *Resizer {
	return &Resizer{
		Quality:   90,
		Landscape: Size{Width: 325, Height: 227},
		Portrait:  Size{Width: 245, Height: 350},
		Logger:    zap.NewNop(),
	}
}

// Target picks the output resolution for a source of the given dimensions:
// landscape when strictly wider than tall, portrait otherwise.
func (r *Resizer) Target(width, height int) Size {
	if width > height {
		return r.Landscape
	}
	return r.Portrait
}

// Resize scales every file of inputDir into outputDir under the same name.
// Files already present in outputDir are left alone. Files are processed
// concurrently and in no particular order; the first failure cancels the
// files not yet started.
func (r *Resizer) Resize(ctx context.Context, inputDir, outputDir string) (Stats, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return Stats{}, fmt.Errorf("error reading input directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return Stats{}, fmt.Errorf("error creating output directory: %w", err)
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var resized, skipped atomic.Int64

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(inputDir, entry.Name())
		dst := filepath.Join(outputDir, entry.Name())

		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			done, err := r.resizeFile(src, dst)
			if err != nil {
				return err
			}
			if done {
				resized.Add(1)
			} else {
				skipped.Add(1)
			}
			return nil
		})
	}

	err = eg.Wait()
	return Stats{Resized: int(resized.Load()), Skipped: int(skipped.Load())}, err
}

// resizeFile reports false when dst already exists and nothing was done
func (r *Resizer) resizeFile(src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err == nil {
		r.logger().Debug("Skipping existing image", zap.String("path", dst))
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("error checking %s: %w", dst, err)
	}

	img, err := decode(src)
	if err != nil {
		return false, err
	}

	bounds := img.Bounds()
	target := r.Target(bounds.Dx(), bounds.Dy())
	scaled := resize.Resize(uint(target.Width), uint(target.Height), img, resize.Bicubic)

	r.logger().Info("Resizing image",
		zap.String("source", src),
		zap.String("from", fmt.Sprintf("(%d, %d)", bounds.Dx(), bounds.Dy())),
		zap.String("to", fmt.Sprintf("(%d, %d)", target.Width, target.Height)))

	if err := r.encode(dst, scaled); err != nil {
		return false, err
	}
	return true, nil
}

func decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// encode writes img as JPEG. A partially written file is removed so that a
// later run does not skip it.
func (r *Resizer) encode(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	err = jpeg.Encode(file, img, &jpeg.Options{Quality: r.Quality})
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (r *Resizer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
