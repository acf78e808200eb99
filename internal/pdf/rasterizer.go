package pdf

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Rasterizer captures a rendered document, given as text lines in layout
// order, into a raster image at the requested logical width and upscale
// factor. It is the pipeline's external collaborator; the HTML-engine-backed
// implementation lives outside this module and tests substitute fakes.
type Rasterizer interface {
	Rasterize(ctx context.Context, lines []string, width, scale int) (image.Image, error)
}

const (
	rasterMargin     = 20
	rasterLineHeight = 18
)

// basicRasterizer is the built-in implementation: it draws the document
// lines with a fixed bitmap face onto an opaque white canvas, then upscales
// by the requested factor. Static content only, so there is nothing to
// neutralize; the opaque background is forced here.
type basicRasterizer struct{}

// NewBasicRasterizer returns the built-in text rasterizer.
func NewBasicRasterizer() Rasterizer {
	return basicRasterizer{}
}

func (basicRasterizer) Rasterize(ctx context.Context, lines []string, width, scale int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	height := 2*rasterMargin + rasterLineHeight*len(lines)
	base := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(base, base.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  base,
		Src:  image.Black,
		Face: face,
	}
	y := rasterMargin + face.Ascent
	for _, line := range lines {
		d.Dot = fixed.P(rasterMargin, y)
		d.DrawString(line)
		y += rasterLineHeight
	}

	if scale <= 1 {
		return base, nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return scaled, nil
}
