package shotpath

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Config store keys read by the allocator.
const (
	KeyScreenshotPath = "ScreenshotPath"
	KeyUserDataPath   = "UserDataPath"
)

const (
	// MaxShots is the exclusive upper bound of the per-session counter.
	MaxShots = 10_000_000
	// MaxNameLen bounds the content-name portion of the file name in bytes.
	MaxNameLen = 64
	// DefaultSubdir is created under the user data directory when no
	// screenshot directory is configured.
	DefaultSubdir = "screenshot"
	fallbackName  = "screenshot"
	placeholder   = "#######"
	dirPerm       = 0o700
)

var (
	ErrCounterExhausted = errors.New("shotpath: screenshot counter exhausted")
	ErrDirectory        = errors.New("shotpath: screenshot directory unavailable")
)

// ConfigStore resolves string settings by key. An empty result means unset.
type ConfigStore interface {
	String(key string) string
}

// Allocator hands out collision-free screenshot paths for the loaded content.
// The counter only moves forward within a session, so successive calls resume
// probing where the previous one stopped. Not safe for concurrent use.
type Allocator struct {
	cfg     ConfigStore
	logger  *slog.Logger
	name    string
	counter int
}

func NewAllocator(cfg ConfigStore, logger *slog.Logger) *Allocator {
	return &Allocator{cfg: cfg, logger: logger}
}

// SetContent records the display name of the loaded content.
func (a *Allocator) SetContent(name string) { a.name = name }

// Reset zeroes the session counter. Call once per content load.
func (a *Allocator) Reset() { a.counter = 0 }

// Counter returns the value the next probe starts from.
func (a *Allocator) Counter() int { return a.counter }

// NextPath returns the first free path for the current content, starting at
// the session counter, and advances the counter past it.
func (a *Allocator) NextPath() (string, error) {
	dir, err := a.directory()
	if err != nil {
		if a.logger != nil {
			a.logger.Error("screenshot directory", "error", err)
		}
		return "", err
	}
	template := filepath.Join(dir, BaseName(a.name))
	for ; a.counter < MaxShots; a.counter++ {
		candidate := Substitute(template, a.counter)
		if !exists(candidate) {
			a.counter++
			return candidate, nil
		}
	}
	if a.logger != nil {
		a.logger.Error("can't save screenshot; directory already holds the maximum number of screenshots for this content",
			"dir", dir, "max", MaxShots)
	}
	return "", ErrCounterExhausted
}

func (a *Allocator) directory() (string, error) {
	if a.cfg != nil {
		if dir := a.cfg.String(KeyScreenshotPath); dir != "" {
			return dir, nil
		}
	}
	base := ""
	if a.cfg != nil {
		base = a.cfg.String(KeyUserDataPath)
	}
	if base == "" {
		return "", fmt.Errorf("%w: no user data path configured", ErrDirectory)
	}
	dir := filepath.Join(base, DefaultSubdir)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDirectory, err)
	}
	return dir, nil
}

// BaseName builds "<name>-#######.png": ASCII lowercased, spaces replaced by
// underscores, path separators neutralised and the name bounded to MaxNameLen.
func BaseName(name string) string {
	name = strings.TrimRight(strings.TrimSpace(name), "\x00")
	if len(name) > MaxNameLen {
		cut := MaxNameLen
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	b := []byte(name)
	for i, c := range b {
		switch {
		case c == ' ' || c == '/' || c == '\\' || c == os.PathSeparator:
			b[i] = '_'
		case c >= 'A' && c <= 'Z':
			b[i] = c + ('a' - 'A')
		}
	}
	if len(b) == 0 {
		b = []byte(fallbackName)
	}
	return string(b) + "-" + placeholder + ".png"
}

// Substitute replaces the trailing counter placeholder of template with n
// formatted as %07d.
func Substitute(template string, n int) string {
	i := strings.LastIndex(template, placeholder)
	if i < 0 {
		return template
	}
	return template[:i] + fmt.Sprintf("%07d", n) + template[i+len(placeholder):]
}

// exists reports whether path can be opened for reading. Any open failure is
// treated as a free slot; a write into an unreadable slot fails loudly later.
func exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
