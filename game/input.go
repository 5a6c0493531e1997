package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// SetupInputHandlers wires browser touch events to the contest flow.
// Mouse events are mapped to a synthetic single touch so the game stays
// playable on a desktop for development.
func (g *Game) SetupInputHandlers() {
	doc := js.Global.Get("document")

	touchXY := func(touch *js.Object) (float64, float64) {
		rect := g.Canvas.Call("getBoundingClientRect")
		scaleX := float64(WIDTH) / rect.Get("width").Float()
		scaleY := float64(HEIGHT) / rect.Get("height").Float()
		x := (touch.Get("clientX").Float() - rect.Get("left").Float()) * scaleX
		y := (touch.Get("clientY").Float() - rect.Get("top").Float()) * scaleY
		return x, y
	}

	forEachChangedTouch := func(event *js.Object, fn func(id int, touch *js.Object)) {
		touches := event.Get("changedTouches")
		for i := 0; i < touches.Get("length").Int(); i++ {
			touch := touches.Index(i)
			fn(touch.Get("identifier").Int(), touch)
		}
	}

	doc.Call("addEventListener", "touchstart", func(event *js.Object) {
		event.Call("preventDefault")
		g.Audio.Resume()
		forEachChangedTouch(event, func(id int, touch *js.Object) {
			x, y := touchXY(touch)
			g.TouchDown(id, x, y)
		})
	})

	doc.Call("addEventListener", "touchmove", func(event *js.Object) {
		event.Call("preventDefault")
		forEachChangedTouch(event, func(id int, touch *js.Object) {
			x, y := touchXY(touch)
			g.TouchMove(id, x, y)
		})
	})

	for _, name := range []string{"touchend", "touchcancel"} {
		doc.Call("addEventListener", name, func(event *js.Object) {
			event.Call("preventDefault")
			forEachChangedTouch(event, func(id int, touch *js.Object) {
				g.TouchUp(id)
			})
		})
	}

	// Mouse fallback: one synthetic finger with a fixed id.
	const mouseID = -1
	mouseDown := false

	doc.Call("addEventListener", "mousedown", func(event *js.Object) {
		g.Audio.Resume()
		mouseDown = true
		x, y := touchXY(event)
		g.TouchDown(mouseID, x, y)
	})
	doc.Call("addEventListener", "mousemove", func(event *js.Object) {
		if !mouseDown {
			return
		}
		x, y := touchXY(event)
		g.TouchMove(mouseID, x, y)
	})
	doc.Call("addEventListener", "mouseup", func(event *js.Object) {
		mouseDown = false
		g.TouchUp(mouseID)
	})

	// Keyboard: F10 toggles the stats overlay, D toggles debug logging.
	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		switch event.Get("keyCode").Int() {
		case 121: // F10
			g.StatsOverlay.Toggle()
			event.Call("preventDefault")
		case 68: // D
			EnableDebug = !EnableDebug
		}
	})
}
