package hal

import (
	"fmt"
	"os"
	"sync"
)

// Host is the desktop backing for the chart: a software RGB565 framebuffer
// plus input sources, presented through an ebiten window (RunWindow) or a
// no-window ticker (RunHeadless).
type Host struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
}

// New returns a host with a framebuffer of the given size.
func New(width, height int) *Host {
	return &Host{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
	}
}

func (h *Host) Logger() Logger           { return h.logger }
func (h *Host) Framebuffer() Framebuffer { return h.fb }
func (h *Host) Keyboard() Keyboard       { return h.kbd }
func (h *Host) Pointer() Pointer         { return h.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
