//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/guilhem-/chwazam/game"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}
	// Set canvas dimensions
	canvas.Set("width", game.WIDTH)
	canvas.Set("height", game.HEIGHT)

	// Get 2D context
	ctx := canvas.Call("getContext", "2d")

	// Create the game instance and wire it to the browser
	g := game.NewGame()
	g.AttachCanvas(canvas, ctx)
	g.SetupInputHandlers()
	g.Start()

	select {}
}
