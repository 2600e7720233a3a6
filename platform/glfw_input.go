// Package platform feeds OS input into the frame core. It owns a glfw
// window created without any client API: it never renders, it only
// translates pointer, keyboard and text events into the per-frame RawInput
// record the context consumes.
package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/emberui/ember/geom"
	"github.com/emberui/ember/input"
)

type Config struct {
	Title  string
	Width  int
	Height int
}

// Window is the input feed. Must be used from the main OS thread.
type Window struct {
	w      *glfw.Window
	events []input.Event
	scroll geom.Vec2
}

func NewWindow(cfg Config) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// No GL/Vulkan context: the core emits abstract paint commands and an
	// external renderer owns the pixels.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	pw := &Window{w: win}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == input.KeyUnknown {
			return
		}
		pw.events = append(pw.events, input.KeyEvent{
			Key:     k,
			Pressed: action != glfw.Release,
			Mods:    translateMods(mods),
		})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		pw.events = append(pw.events, input.TextEvent{Text: string(r)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		pw.scroll.X += float32(xoff)
		pw.scroll.Y += float32(yoff)
	})

	return pw, nil
}

// PollRawInput pumps OS events and snapshots them into a RawInput for the
// next BeginFrame. Queued events and scroll are drained.
func (pw *Window) PollRawInput() input.RawInput {
	glfw.PollEvents()

	width, height := pw.w.GetSize()
	scaleX, _ := pw.w.GetContentScale()

	raw := input.RawInput{
		MouseDown:      pw.w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		Scroll:         pw.scroll,
		ScreenRect:     geom.RectFromMinSize(geom.Pos2{}, geom.Vec2{X: float32(width), Y: float32(height)}),
		PixelsPerPoint: scaleX,
		Time:           glfw.GetTime(),
		Events:         pw.events,
	}
	if pw.w.GetAttrib(glfw.Hovered) == glfw.True {
		x, y := pw.w.GetCursorPos()
		pos := geom.Pos2{X: float32(x), Y: float32(y)}
		raw.MousePos = &pos
	}

	pw.events = nil
	pw.scroll = geom.Vec2{}
	return raw
}

func (pw *Window) ShouldClose() bool { return pw.w.ShouldClose() }

func (pw *Window) SetTitle(t string) { pw.w.SetTitle(t) }

func (pw *Window) Close() {
	pw.w.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyTab:
		return input.KeyTab
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return input.KeyEnter
	case glfw.KeyBackspace:
		return input.KeyBackspace
	case glfw.KeyDelete:
		return input.KeyDelete
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyHome:
		return input.KeyHome
	case glfw.KeyEnd:
		return input.KeyEnd
	case glfw.KeyLeft:
		return input.KeyArrowLeft
	case glfw.KeyRight:
		return input.KeyArrowRight
	case glfw.KeyUp:
		return input.KeyArrowUp
	case glfw.KeyDown:
		return input.KeyArrowDown
	default:
		return input.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) input.Mod {
	var mods input.Mod
	if m&glfw.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= input.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= input.ModSuper
	}
	return mods
}
