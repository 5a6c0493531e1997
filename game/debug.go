package game

import (
	"github.com/gopherjs/gopherjs/js"
)

var EnableDebug = false

// Debug logs a message to the browser console if debug mode is enabled.
// Safe to call natively, where there is no console to log to.
func Debug(args ...interface{}) {
	if EnableDebug && js.Global != nil {
		js.Global.Get("console").Call("log", args...)
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug && js.Global != nil {
		js.Global.Get("console").Call("warn", args...)
	}
}

// DebugError logs an error to the browser console if debug mode is enabled.
func DebugError(args ...interface{}) {
	if EnableDebug && js.Global != nil {
		js.Global.Get("console").Call("error", args...)
	}
}
