package renderer

import "image"

// bytesPerPixel is R, G, B, A at 8 bits each
const bytesPerPixel = 4

// Framebuffer is a flat row-major RGBA buffer allocated once before rendering
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// RowTask is one scanline of work: the row index and the bytes it owns
type RowTask struct {
	Row    int
	Pixels []byte
}

// NewFramebuffer allocates width*height*4 bytes
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*bytesPerPixel),
	}
}

// Stride returns the number of bytes in one row
func (fb *Framebuffer) Stride() int {
	return fb.Width * bytesPerPixel
}

// Rows splits the buffer into one task per row. The slices never overlap and
// their capacity ends at the row boundary, so no task can reach its neighbour.
func (fb *Framebuffer) Rows() []RowTask {
	stride := fb.Stride()
	tasks := make([]RowTask, fb.Height)

	for y := 0; y < fb.Height; y++ {
		start := y * stride
		end := start + stride
		tasks[y] = RowTask{Row: y, Pixels: fb.Pix[start:end:end]}
	}

	return tasks
}

// Image exposes the buffer as an *image.RGBA without copying
func (fb *Framebuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pix,
		Stride: fb.Stride(),
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}
