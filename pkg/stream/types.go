// Package stream implements a set of generic interfaces and classes
// designed to allow streams of atomic objects to be pipelined, much
// line one might do with an [io.Reader]
package stream

// A Decoder is able to hydrate an arbitrary variable.
type Decoder interface {
	Decode(v any) error
}

// A stream is able to provide a source of atomic data values.
//
// The source of a Stream's data is implementation specific - an example
// may be reading JSON objects from a long running HTTP response.
//
// A Stream which holds a connection open should also implement
// [io.Closer]; the helpers in this package close it when the consumer is
// done with the stream.
type Stream[T any] interface {
	Next() (T, error)
}
