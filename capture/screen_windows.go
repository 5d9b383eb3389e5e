//go:build windows

package capture

// Windows screen read-back through GDI. Each read BitBlt's the screen into a
// bottom-up 32-bit DIB and packs it as RGB straight into the caller's buffer,
// so the row order already matches what the capture service expects.

import (
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Win32 constants
const (
	smCxScreen   = 0
	smCyScreen   = 1
	srccopy      = 0x00CC0020
	dibRGBColors = 0
	biRgb        = 0
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	gdi32                  = windows.NewLazySystemDLL("gdi32.dll")
	procGetDC              = user32.NewProc("GetDC")
	procReleaseDC          = user32.NewProc("ReleaseDC")
	procGetSystemMetrics   = user32.NewProc("GetSystemMetrics")
	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procSelectObject       = gdi32.NewProc("SelectObject")
	procBitBlt             = gdi32.NewProc("BitBlt")
	procCreateDIBSection   = gdi32.NewProc("CreateDIBSection")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
)

// BITMAPINFO structures (Win32 layout).
type bitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	_      [4]byte // one RGBQUAD placeholder (unused for 32-bit)
}

// ScreenSource reads the primary display as the frame backend.
type ScreenSource struct {
	logger *slog.Logger
}

func NewScreenSource(logger *slog.Logger) *ScreenSource { return &ScreenSource{logger: logger} }

func (s *ScreenSource) ReadScreen(dst []byte) (int, int) {
	w := int(getSystemMetric(smCxScreen))
	h := int(getSystemMetric(smCyScreen))
	if w <= 0 || h <= 0 {
		s.logErr("screen size", fmt.Errorf("capture: invalid screen size w=%d h=%d", w, h))
		return 0, 0
	}
	if dst == nil {
		return w, h
	}
	if err := readInto(dst, w, h); err != nil {
		s.logErr("capture screen", err)
		return 0, 0
	}
	return w, h
}

func (s *ScreenSource) logErr(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, "error", err)
	}
}

// readInto BitBlt's the w x h screen into a bottom-up DIB section and packs
// its BGRA pixels as RGB into dst. Rows that do not fit dst are skipped.
func readInto(dst []byte, w, h int) error {
	screenDC, _, _ := procGetDC.Call(0)
	if screenDC == 0 {
		return fmt.Errorf("capture: GetDC failed winerr=%v", windows.GetLastError())
	}
	defer procReleaseDC.Call(0, screenDC)

	memDC, _, _ := procCreateCompatibleDC.Call(screenDC)
	if memDC == 0 {
		return fmt.Errorf("capture: CreateCompatibleDC failed winerr=%v", windows.GetLastError())
	}
	defer procDeleteDC.Call(memDC)

	var bi bitmapInfo
	bi.Header.BiSize = uint32(unsafe.Sizeof(bi.Header))
	bi.Header.BiWidth = int32(w)
	bi.Header.BiHeight = int32(h) // positive height: bottom-up rows
	bi.Header.BiPlanes = 1
	bi.Header.BiBitCount = 32
	bi.Header.BiCompression = biRgb
	bi.Header.BiSizeImage = uint32(w * h * 4)

	var bitsPtr unsafe.Pointer
	bmp, _, _ := procCreateDIBSection.Call(memDC, uintptr(unsafe.Pointer(&bi)), dibRGBColors, uintptr(unsafe.Pointer(&bitsPtr)), 0, 0)
	if bmp == 0 {
		return fmt.Errorf("capture: CreateDIBSection failed winerr=%v", windows.GetLastError())
	}
	defer procDeleteObject.Call(bmp)

	prev, _, _ := procSelectObject.Call(memDC, bmp)
	if prev == 0 || prev == ^uintptr(0) { // failure or GDI_ERROR
		return fmt.Errorf("capture: SelectObject failed winerr=%v", windows.GetLastError())
	}

	ok, _, _ := procBitBlt.Call(memDC, 0, 0, uintptr(w), uintptr(h), screenDC, 0, 0, srccopy)
	if ok == 0 {
		return fmt.Errorf("capture: BitBlt failed w=%d h=%d winerr=%v", w, h, windows.GetLastError())
	}

	src := unsafe.Slice((*byte)(bitsPtr), w*h*4)
	pitch := w * 3
	for r := 0; r < h; r++ {
		if (r+1)*pitch > len(dst) {
			break
		}
		in := src[r*w*4 : (r+1)*w*4]
		out := dst[r*pitch : (r+1)*pitch]
		for s, d := 0, 0; d < len(out); s, d = s+4, d+3 {
			out[d+0] = in[s+2]
			out[d+1] = in[s+1]
			out[d+2] = in[s+0]
		}
	}
	return nil
}

func getSystemMetric(idx int) int32 {
	v, _, _ := procGetSystemMetrics.Call(uintptr(idx))
	return int32(v)
}
