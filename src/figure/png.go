package figure

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

// RenderImage composes every panel into one RGBA image of PixelSize.
func (f *Figure) RenderImage() (*image.RGBA, error) {
	w, h := f.PixelSize()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for i, ax := range f.panels {
		cell := f.cell(i, w, h)
		img, err := ax.RenderImage(cell.Dx(), cell.Dy(), f.DPI)
		if err != nil {
			return nil, errors.Wrapf(err, "panel %d", i)
		}
		draw.Draw(dst, cell, img, img.Bounds().Min, draw.Over)
	}
	return dst, nil
}

// WritePNG encodes the composed figure.
func (f *Figure) WritePNG(w io.Writer) error {
	img, err := f.RenderImage()
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, img), "encode png")
}

// cell is the pixel rectangle of panel i; the last row and column absorb
// rounding so the grid covers the whole image.
func (f *Figure) cell(i, w, h int) image.Rectangle {
	r, c := i/f.Cols, i%f.Cols
	x0, x1 := c*w/f.Cols, (c+1)*w/f.Cols
	y0, y1 := r*h/f.Rows, (r+1)*h/f.Rows
	return image.Rect(x0, y0, x1, y1)
}
