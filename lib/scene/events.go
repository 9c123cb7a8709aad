package scene

type EventListener func(scene *Scene, data interface{})

const (
	EventClearColour      = "clear-colour"
	EventRebuildRequested = "rebuild-requested"
	EventProgramBuilt     = "program-built"
	EventShutdown         = "shutdown"
)

type EventDataClearColour struct {
	Event  string `json:"event"`
	Colour string `json:"colour"`
}

type EventDataRebuild struct {
	Event  string `json:"event"`
	Reason string `json:"reason"`
}

type EventDataProgramBuilt struct {
	Event   string `json:"event"`
	Program uint32 `json:"program"`
	Cached  bool   `json:"cached"`
}

type EventDataShutdown struct {
	Event  string `json:"event"`
	Reason string `json:"reason"`
}

func (s *Scene) AddEventListener(event string, callback EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener[event] = append(s.listener[event], callback)
}

// listeners run on their own goroutine so that the render thread never
// waits on a slow websocket client.
func (s *Scene) invoke(event string, data interface{}) {
	s.mu.Lock()
	listeners := append([]EventListener(nil), s.listener[event]...)
	s.mu.Unlock()

	for _, listener := range listeners {
		go listener(s, data)
	}
}
