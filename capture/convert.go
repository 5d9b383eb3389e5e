package capture

import "image"

// PackBottomUpRGB converts a top-down RGBA image into packed RGB rows stored
// bottom-up (storage row 0 is the bottom of the image), matching what a GL
// read-back produces. Rows that do not fit into dst are skipped. It returns
// the image dimensions.
func PackBottomUpRGB(dst []byte, img *image.RGBA) (int, int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	pitch := w * 3
	for y := 0; y < h; y++ {
		r := h - 1 - y
		if (r+1)*pitch > len(dst) {
			continue
		}
		out := dst[r*pitch : (r+1)*pitch]
		in := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for s, d := 0, 0; d < len(out); s, d = s+4, d+3 {
			out[d+0] = in[s+0]
			out[d+1] = in[s+1]
			out[d+2] = in[s+2]
		}
	}
	return w, h
}
