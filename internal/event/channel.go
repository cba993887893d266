package event

// Name identifies a channel on the bus. Channels with the same name share
// subscriber lists, so names must be unique within a bus.
type Name string

// String returns the channel name as a string.
func (n Name) String() string {
	return string(n)
}

// Channel is a typed handle for publishing and subscribing. The zero value
// is not usable; declare channels with NewChannel.
type Channel[T any] struct {
	name Name
}

// NewChannel declares a channel carrying payloads of type T.
func NewChannel[T any](name Name) Channel[T] {
	return Channel[T]{name: name}
}

// Name returns the channel's bus name.
func (c Channel[T]) Name() Name {
	return c.name
}
