package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ClearColourReq struct {
	Colour string `json:"colour" example:"#336699ff"`
}

// @Summary	Change the background colour
// @Router		/api/clear-colour [post]
// @Param		req	body	ClearColourReq	true	"New colour as #RRGGBBAA"
// @Tags		render
// @Accept		json
// @Produce	json
// @Success	200
// @Failure	400	{string}	string	"Could not decode json request"
func (a *Api) handleClearColour(w http.ResponseWriter, req *http.Request) {
	var colourReq ClearColourReq
	err := json.NewDecoder(req.Body).Decode(&colourReq)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
		return
	}

	err = a.scene.SetClearColour(colourReq.Colour)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not set clear colour: %s", err), http.StatusBadRequest)
		return
	}
	a.writeOK(w)
}

// @Summary	Recompile the shaders and re-upload the vertex buffers
// @Router		/api/rebuild [post]
// @Tags		render
// @Success	200
func (a *Api) handleRebuild(w http.ResponseWriter, _ *http.Request) {
	a.scene.RequestRebuild("api")
	a.writeOK(w)
}
