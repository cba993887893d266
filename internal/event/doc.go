// Package event provides a typed publish/subscribe bus for editor
// notifications.
//
// Unlike a string-keyed emitter, channels are declared as typed values and
// carry their payload type in the type system:
//
//	var Saved = event.NewChannel[string]("document.saved")
//
//	sub := event.Subscribe(bus, Saved, func(path string) { ... })
//	event.Publish(bus, Saved, "/tmp/notes.md")
//	bus.Unsubscribe(sub)
//
// Handlers run synchronously on the publishing goroutine, in subscription
// order. The bus is safe for concurrent use.
package event
