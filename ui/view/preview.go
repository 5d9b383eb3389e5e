package view

import (
	"image"

	"github.com/soocke/emushot/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	// Max preview dimensions; the presenter loads thumbnails at this size.
	MaxPreviewW = 320
	MaxPreviewH = 240
)

// ShotPreview shows the last written screenshot.
type ShotPreview interface {
	Update(img image.Image)
	Reset()
}

type shotPreview struct {
	label *LabelWidget
	photo *Img // disposed before each replacement
}

// NewShotPreview creates the preview label spanning the given row.
func NewShotPreview(row, columns int) ShotPreview {
	p := &shotPreview{}
	p.photo = NewPhoto(Data(placeholderPNG()))
	p.label = Label(Image(p.photo), Borderwidth(1), Relief("sunken"))
	Grid(p.label, Row(row), Column(0), Columnspan(columns), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return p
}

func placeholderPNG() []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, MaxPreviewW, MaxPreviewH)))
}

func (p *shotPreview) Update(img image.Image) {
	if p == nil || p.label == nil || img == nil {
		return
	}
	p.replace(images.EncodePNG(images.ScaleToFit(img, MaxPreviewW, MaxPreviewH)))
}

func (p *shotPreview) Reset() {
	if p == nil || p.label == nil {
		return
	}
	p.replace(placeholderPNG())
}

func (p *shotPreview) replace(pngBytes []byte) {
	if p.photo != nil {
		p.photo.Delete()
	}
	p.photo = NewPhoto(Data(pngBytes))
	p.label.Configure(Image(p.photo))
}
