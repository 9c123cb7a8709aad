package scene

import (
	"image"
	"sync"

	"github.com/fosdem/glsample/lib/config"
	"github.com/fosdem/glsample/lib/utils"
)

// Scene is the state shared between the render thread, keyboard
// callbacks and the HTTP API.
type Scene struct {
	mu sync.Mutex

	clearColour       utils.Colour
	rebuildRequested  bool
	shutdownRequested bool

	listener map[string][]EventListener
	captures chan chan *image.RGBA
}

func New(cfg *config.Config) (*Scene, error) {
	colour, err := utils.ColourParse(cfg.ClearColour)
	if err != nil {
		return nil, err
	}
	return &Scene{
		clearColour: colour,
		listener:    make(map[string][]EventListener),
		captures:    make(chan chan *image.RGBA, 8),
	}, nil
}

func (s *Scene) ClearColour() utils.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearColour
}

func (s *Scene) SetClearColour(hex string) error {
	colour, err := utils.ColourParse(hex)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.clearColour = colour
	s.mu.Unlock()

	s.invoke(EventClearColour, EventDataClearColour{Colour: colour.String()})
	return nil
}

// RequestRebuild asks the renderer to rebuild its shader program and
// vertex buffers before the next frame.
func (s *Scene) RequestRebuild(reason string) {
	s.mu.Lock()
	s.rebuildRequested = true
	s.mu.Unlock()

	s.invoke(EventRebuildRequested, EventDataRebuild{Reason: reason})
}

// TakeRebuild reports whether a rebuild was requested and clears the request.
func (s *Scene) TakeRebuild() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.rebuildRequested
	s.rebuildRequested = false
	return r
}

func (s *Scene) RequestShutdown(reason string) {
	s.mu.Lock()
	already := s.shutdownRequested
	s.shutdownRequested = true
	s.mu.Unlock()

	if !already {
		s.invoke(EventShutdown, EventDataShutdown{Reason: reason})
	}
}

func (s *Scene) ShutdownRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownRequested
}

// ProgramBuilt is called by the renderer after a successful program link.
func (s *Scene) ProgramBuilt(program uint32, cached bool) {
	s.invoke(EventProgramBuilt, EventDataProgramBuilt{Program: program, Cached: cached})
}
