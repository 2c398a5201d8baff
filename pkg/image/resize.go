package image

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// sharpenSigma restores the thin chart lines that downscaling softens.
const sharpenSigma = 0.5

// ResizeToFit scales img down to fit within maxW x maxH pixels, keeping the
// aspect ratio. Images that already fit are returned unchanged; nothing is
// ever upscaled.
func ResizeToFit(img image.Image, maxW, maxH int) image.Image {
	if img == nil {
		return nil
	}
	maxW = max(maxW, 1)
	maxH = max(maxH, 1)

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 || (srcW <= maxW && srcH <= maxH) {
		return img
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	dstW := max(int(math.Round(float64(srcW)*scale)), 1)
	dstH := max(int(math.Round(float64(srcH)*scale)), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	if dstW < 3 || dstH < 3 {
		return dst
	}
	return imaging.Sharpen(dst, sharpenSigma)
}

// ImageToNRGBA converts any image.Image to *image.NRGBA.
func ImageToNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
