package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{0xE8, 0x5C, 0x50},
	}
	for _, c := range cases {
		r, g, b := rgb888From565(rgb565(c.r, c.g, c.b))
		// RGB565 keeps 5/6/5 bits; allow the quantization error.
		if absDiff(r, c.r) > 8 || absDiff(g, c.g) > 4 || absDiff(b, c.b) > 8 {
			t.Errorf("round trip (%d,%d,%d) -> (%d,%d,%d)", c.r, c.g, c.b, r, g, b)
		}
	}
	if rgb565(255, 255, 255) != 0xFFFF {
		t.Error("white is not all bits set")
	}
}

func TestHostFramebufferLayout(t *testing.T) {
	h := New(320, 240)
	fb := h.Framebuffer()
	if fb.Width() != 320 || fb.Height() != 240 {
		t.Fatalf("size %dx%d", fb.Width(), fb.Height())
	}
	if fb.Format() != PixelFormatRGB565 {
		t.Fatalf("format %v", fb.Format())
	}
	if fb.StrideBytes() != 640 {
		t.Fatalf("stride %d", fb.StrideBytes())
	}
	if len(fb.Buffer()) != 640*240 {
		t.Fatalf("buffer %d bytes", len(fb.Buffer()))
	}

	fb.ClearRGB(255, 255, 255)
	buf := fb.Buffer()
	if buf[0] != 0xFF || buf[1] != 0xFF {
		t.Error("clear did not fill the buffer")
	}
	if err := fb.Present(); err != nil {
		t.Errorf("Present: %v", err)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
