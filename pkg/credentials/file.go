package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
	toml "github.com/pelletier/go-toml/v2"
	"k8s.io/klog/v2"
)

// File is a Provider for credentials which are backed by a TOML file.
// This will load the credentials from the file, and will watch the file
// for changes, and re-read when required.
//
// The file holds the same keys as the [Credentials] struct tags:
//
//	consumer_key = "..."
//	consumer_secret = "..."
//	access_token = "..."
//	access_token_secret = "..."
//
// If a rewritten file fails to parse or validate, the previous set is kept
// and the failure is logged.
type File struct {
	mutex       sync.RWMutex
	credentials Credentials

	filename string
	watcher  *fsnotify.Watcher
	log      logr.Logger
	done     chan struct{}
	closeErr func() error
}

type FileOption func(*File)

func WithLogger(log logr.Logger) FileOption {
	return func(f *File) {
		f.log = log
	}
}

func NewFile(filename string, opts ...FileOption) (*File, error) {
	filename = filepath.Clean(filename)

	c, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	f := &File{
		credentials: c,
		filename:    filename,
		log:         klog.Background(),
		done:        make(chan struct{}),
	}
	for _, o := range opts {
		o(f)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// The directory is watched rather than the file, as editors and secret
	// mounts commonly replace the file by renaming a new one over it, which
	// would silently end a watch on the file itself.
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, err
	}
	f.watcher = watcher
	f.closeErr = sync.OnceValue(func() error {
		close(f.done)
		return f.watcher.Close()
	})

	go f.watch()

	return f, nil
}

func (f *File) watch() {
	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			f.reload()
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.log.Error(err, "credentials file watch failed", "file", f.filename)
		case <-f.done:
			return
		}
	}
}

func (f *File) reload() {
	c, err := readFile(f.filename)
	if err != nil {
		f.log.Error(err, "keeping previous credentials", "file", f.filename)
		return
	}

	f.mutex.Lock()
	f.credentials = c
	f.mutex.Unlock()

	f.log.V(2).Info("reloaded credentials", "file", f.filename, "userContext", c.HasUserContext())
}

func (f *File) Credentials() Credentials {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	return f.credentials
}

// Close stops watching the file. The last loaded credentials remain
// available.
func (f *File) Close() error {
	return f.closeErr()
}

func readFile(filename string) (Credentials, error) {
	var c Credentials

	data, err := os.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("read credentials: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse credentials %s: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", filename, err)
	}

	return c, nil
}
