package stream

import (
	"context"
	"errors"
	"io"
	"iter"
	"sync"
)

// All adapts a Stream for use with range. The underlying stream is closed
// exactly once when the loop ends, whether the stream finished, failed, the
// consumer broke out of the loop, or ctx was cancelled.
//
// A terminal error is yielded once as the final element; io.EOF is not.
func All[T any](ctx context.Context, s Stream[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		release := sync.OnceValue(func() error {
			if closer, ok := s.(io.Closer); ok {
				return closer.Close()
			}
			return nil
		})
		defer release()

		stop := context.AfterFunc(ctx, func() { release() })
		defer stop()

		for {
			t, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					err = ctxErr
				}
				yield(t, err)
				return
			}
			if !yield(t, nil) {
				return
			}
		}
	}
}
