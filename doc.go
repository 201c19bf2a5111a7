// Package alder is the retained-mode core of a widget toolkit: a
// generational widget arena with runtime-checked access, a dirty-flag render
// pipeline (layout, compose, draw, animate), an adaptive draw cache, and
// focus, pointer, and touch dispatch.
//
// The core is backend-agnostic. It emits drawing into a Canvas and talks to
// the platform through Signals; the backend subpackage provides an
// Ebitengine implementation of both sides.
//
// Widgets live in a World and are addressed by handles:
//
//	world := alder.NewWorld(alder.DefaultSettings())
//	pane := alder.Insert(world, &alder.Pane{Color: alder.RGB(0.1, 0.1, 0.12)})
//	window, _ := world.CreateWindow(pane.ID(), alder.DefaultWindow())
//
// Each frame the shell runs the passes in order:
//
//	world.Animate(window, time.Now())
//	world.Layout(window, painter)
//	world.Compose(window)
//	world.Draw(window, canvas)
//
// Everything is single-threaded: the World and every handle must be used
// from the goroutine driving the frame loop.
package alder
