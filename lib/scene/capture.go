package scene

import (
	"context"
	"image"
)

// CaptureFrame asks the render thread for a copy of the next frame and
// waits for it.
func (s *Scene) CaptureFrame(ctx context.Context) (*image.RGBA, error) {
	reply := make(chan *image.RGBA, 1)
	select {
	case s.captures <- reply:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case img := <-reply:
		return img, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ServeCaptures answers all pending capture requests with grab, without
// blocking. It returns the number of requests served.
func (s *Scene) ServeCaptures(grab func() *image.RGBA) int {
	n := 0
	var img *image.RGBA
	for {
		select {
		case reply := <-s.captures:
			if img == nil {
				img = grab()
			}
			reply <- img
			n++
		default:
			return n
		}
	}
}
