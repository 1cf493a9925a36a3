// Package handle wraps host UI nodes in uniform capability handles.
//
// A Handle is the wrapper object exposing capability methods over exactly
// one host node. Wrap inspects a node's shape and returns the matching
// variant: *Element for plain nodes, *Checkbox, *Select and *RadioGroup
// for the stateful form controls, and *Media for playable content with
// its time-addressable cue scheduler.
//
// # Runtime and Registry
//
// A Runtime ties a host.Host to a Registry, the bookkeeping list of all
// live handles it created. Creation methods (CreateElement, CreateSelect,
// CreateMedia, ...) register the handle; Wrap alone never does, so
// wrapping a node found in the tree does not double-register it.
// RemoveElements tears everything down except canvas-bearing handles.
//
//	rt, err := handle.New(myHost, nil)
//	if err != nil { ... }
//	sel := rt.CreateSelect(false)
//	sel.Option("small")
//	sel.Option("large", "l")
//	sel.SetSelected("l")
//
// # Cues
//
// Media handles schedule callbacks against the playback clock:
//
//	id := movie.AddCue(1.5, func(payload any) { ... }, "subtitle")
//	movie.RemoveCue(id)
//
// Cues fire in insertion order as the host's timeupdate notifications
// cross their trigger times.
//
// # Concurrency
//
// Everything here runs on the single cooperative timeline driven by host
// notifications. Handles are not safe for concurrent use.
package handle
