package stream

import "io"

type decoderStream[T any] struct {
	decoder Decoder
}

// FromDecoder returns a Stream[T] based on the given [Decoder]. If the
// decoder is an [io.Closer], so is the returned stream.
func FromDecoder[T any](decoder Decoder) Stream[T] {
	return &decoderStream[T]{
		decoder: decoder,
	}
}

// Next() blocks until it can return the next object in the writer.
// Returns an error if the writer is closed or an object can't be
// decoded.
func (sd *decoderStream[T]) Next() (T, error) {
	var t T

	return t, sd.decoder.Decode(&t)
}

func (sd *decoderStream[T]) Close() error {
	if closer, ok := sd.decoder.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
