package input

import "github.com/veandco/go-sdl2/sdl"

// Viewer key bindings.
const (
	KeyReset      = sdl.SCANCODE_R
	KeyScreenshot = sdl.SCANCODE_F12
	KeyWireframe  = sdl.SCANCODE_W
	KeyQuit       = sdl.SCANCODE_ESCAPE
	KeyFrame      = sdl.SCANCODE_F
	KeyBounds     = sdl.SCANCODE_B
	KeyNormals    = sdl.SCANCODE_N
)

// Actions is what one frame of events asks the viewer to do.
type Actions struct {
	Quit       bool
	Reset      bool
	Screenshot bool
	Wireframe  bool
	Frame      bool
	Bounds     bool
	Normals    bool

	// Orbit is the drag distance in pixels while the left button is held.
	OrbitX, OrbitY float32
	// Pan is the drag distance in pixels while the right button is held.
	PanX, PanY float32
	// Zoom is the summed wheel movement, positive away from the user.
	Zoom float32

	Resized       bool
	Width, Height int
}

// Mapper turns events into Actions and tracks which buttons are held across
// frames.
type Mapper struct {
	orbiting bool
	panning  bool
}

// Map folds one frame of events into Actions.
func (m *Mapper) Map(events []Event) Actions {
	var a Actions
	for _, e := range events {
		switch e.Type {
		case EventQuit:
			a.Quit = true
		case EventWindowResize:
			a.Resized = true
			a.Width, a.Height = e.Width, e.Height
		case EventKeyDown:
			if e.Repeat {
				continue
			}
			switch e.Key {
			case KeyReset:
				a.Reset = true
			case KeyScreenshot:
				a.Screenshot = true
			case KeyWireframe:
				a.Wireframe = !a.Wireframe
			case KeyQuit:
				a.Quit = true
			case KeyFrame:
				a.Frame = true
			case KeyBounds:
				a.Bounds = !a.Bounds
			case KeyNormals:
				a.Normals = !a.Normals
			}
		case EventMouseDown:
			m.setButton(e.Button, true)
		case EventMouseUp:
			m.setButton(e.Button, false)
		case EventMouseMove:
			if m.orbiting {
				a.OrbitX += float32(e.DeltaX)
				a.OrbitY += float32(e.DeltaY)
			}
			if m.panning {
				a.PanX += float32(e.DeltaX)
				a.PanY += float32(e.DeltaY)
			}
		case EventMouseWheel:
			a.Zoom += float32(e.DeltaY)
		}
	}
	return a
}

func (m *Mapper) setButton(button uint8, down bool) {
	switch button {
	case ButtonLeft:
		m.orbiting = down
	case ButtonRight:
		m.panning = down
	}
}
