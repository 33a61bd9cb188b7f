package stream

import (
	"errors"
	"io"
	"sync"
)

// AsyncStream acts as a wrapper for any Stream and allows objects to be
// read from it asynchronously.
//
// Most streams are synchronous by their nature, because the underlying
// source needs to be read sequentially, however once parsed its common
// that items can be processed independently.
type AsyncStream[T any] struct {
	stream Stream[T]
	result chan T
	done   chan struct{}
	stop   func()

	lock sync.RWMutex
	err  error
}

func NewAsyncStream[T any](stream Stream[T]) *AsyncStream[T] {
	sd := &AsyncStream[T]{
		stream: stream,
		result: make(chan T),
		done:   make(chan struct{}),
	}
	sd.stop = sync.OnceFunc(func() {
		close(sd.done)

		// If the stream we've been given can be closed, we'll call that as
		// part of the shutdown. This also unblocks a pending Next().
		if closer, ok := sd.stream.(io.Closer); ok {
			closer.Close()
		}
	})

	go sd.run()

	return sd
}

func (sd *AsyncStream[T]) Stopped() bool {
	select {
	case <-sd.done:
		return true
	default:
		return false
	}
}

func (sd *AsyncStream[T]) run() {
	defer close(sd.result)

	for {
		result, err := sd.stream.Next()

		// Errors after Stop() are the result of closing the stream and
		// are not interesting to the consumer.
		if sd.Stopped() {
			return
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				sd.lock.Lock()
				sd.err = err
				sd.lock.Unlock()
			}
			sd.Stop()
			return
		}

		select {
		case sd.result <- result:
		case <-sd.done:
			return
		}
	}
}

// Stop closes the underlying stream. It may be called any number of times
// from any goroutine.
func (sd *AsyncStream[T]) Stop() {
	sd.stop()
}

// Next returns the next result, or the terminal error once the stream has
// finished. A stream which ended cleanly returns io.EOF.
func (sd *AsyncStream[T]) Next() (T, error) {
	result, ok := <-sd.result
	if ok {
		return result, nil
	}
	if err := sd.Error(); err != nil {
		return result, err
	}
	return result, io.EOF
}

func (sd *AsyncStream[T]) ResultChan() <-chan T {
	return sd.result
}

// Error returns the error which ended the stream. It is nil while the stream
// is running, after a clean end of stream and after Stop.
func (sd *AsyncStream[T]) Error() error {
	sd.lock.RLock()
	defer sd.lock.RUnlock()

	return sd.err
}
