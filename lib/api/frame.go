package api

import (
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"net/http"
	"time"
)

type FrameResponseType string

const (
	JPEG FrameResponseType = "jpeg"
	PNG  FrameResponseType = "png"
)

const captureTimeout = 5 * time.Second

// @Summary	Fetch the next rendered frame as an image
// @Router		/api/frame/{format} [get]
// @Tags		render
// @Param		format	path	FrameResponseType	true	"The image type to return"
// @Success	200
// @Failure	400	{string}	string	"The requested image format is not supported"
// @Failure	503	{string}	string	"The window has no drawable area"
// @Failure	504	{string}	string	"No frame was rendered in time"
func (a *Api) handleFrame(w http.ResponseWriter, req *http.Request) {
	format := FrameResponseType(req.PathValue("format"))
	if format != JPEG && format != PNG {
		http.Error(w, fmt.Sprintf("unsupported image format %q", format), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), captureTimeout)
	defer cancel()
	img, err := a.scene.CaptureFrame(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not capture frame: %s", err), http.StatusGatewayTimeout)
		return
	}
	if img == nil || img.Bounds().Empty() {
		// minimised
		http.Error(w, "window has no drawable area", http.StatusServiceUnavailable)
		return
	}

	switch format {
	case JPEG:
		w.Header().Set("Content-Type", "image/jpeg")
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case PNG:
		w.Header().Set("Content-Type", "image/png")
		err = png.Encode(w, img)
	}
	if err != nil {
		a.log.Warn("could not encode frame", "err", err)
	}
}
