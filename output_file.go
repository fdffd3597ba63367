package blacklog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// FileOptions tunes a FileOutput beyond its path pattern.
type FileOptions struct {
	// RotateBytes closes a file and moves it aside once it grows past this
	// size. Zero disables rotation.
	RotateBytes int64
	// Compress recompresses rotated segments with zstd in the background.
	Compress bool
}

// FileOutput routes lines into one or more files. The destination path is
// itself a pattern rendered per record, so events can split by module,
// severity or timestamp. Files are opened lazily, append mode, and kept
// open. Two locking levels let concurrent writers hit different files
// without serializing on each other.
type FileOutput struct {
	path *PatternLayout
	opts FileOptions

	mu    sync.Mutex
	files map[string]*fileSink
}

type fileSink struct {
	mu   sync.Mutex
	path string
	f    *os.File
	size int64
}

// NewFileOutput opens a file output with the given path pattern, for example
// "/var/log/app/{module}.log".
func NewFileOutput(pathPattern string) (*FileOutput, error) {
	return NewFileOutputWith(pathPattern, FileOptions{})
}

func NewFileOutputWith(pathPattern string, opts FileOptions) (*FileOutput, error) {
	layout, err := NewPatternLayout(pathPattern)
	if err != nil {
		return nil, err
	}
	return &FileOutput{
		path:  layout,
		opts:  opts,
		files: make(map[string]*fileSink),
	}, nil
}

func (o *FileOutput) Write(rec *Record, message []byte) error {
	lb := acquireLineBuf()
	err := o.path.Format(rec, lb)
	path := lb.String()
	releaseLineBuf(lb)
	if err != nil {
		return fmt.Errorf("render path pattern: %w", err)
	}

	sink, err := o.sink(path)
	if err != nil {
		return err
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	n, err := sink.f.Write(message)
	sink.size += int64(n)
	if err != nil {
		return err
	}
	n, err = sink.f.Write(newline)
	sink.size += int64(n)
	if err != nil {
		return err
	}
	if o.opts.RotateBytes > 0 && sink.size >= o.opts.RotateBytes {
		return o.rotate(sink)
	}
	return nil
}

func (o *FileOutput) sink(path string) (*fileSink, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if sink, ok := o.files[path]; ok {
		return sink, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sink := &fileSink{path: path, f: f, size: st.Size()}
	o.files[path] = sink
	return sink, nil
}

// rotate moves the current file aside under a timestamped name and reopens
// the original path. Called with the sink lock held.
func (o *FileOutput) rotate(sink *fileSink) error {
	if err := sink.f.Close(); err != nil {
		return err
	}
	segment := fmt.Sprintf("%s.%d", sink.path, time.Now().UnixMicro())
	if err := os.Rename(sink.path, segment); err != nil {
		return err
	}
	f, err := os.OpenFile(sink.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	sink.f = f
	sink.size = 0
	if o.opts.Compress {
		go func() { _ = compressSegment(segment) }()
	}
	return nil
}

// compressSegment rewrites a rotated segment as segment.zst and removes the
// original. Best effort; a failed compression leaves the plain segment.
func compressSegment(segment string) error {
	src, err := os.Open(segment)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(segment + ".zst")
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(dst)
	if err != nil {
		_ = dst.Close()
		return err
	}
	if _, err := io.Copy(enc, src); err != nil {
		_ = enc.Close()
		_ = dst.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return os.Remove(segment)
}

// Close closes every open file. The output is unusable afterwards.
func (o *FileOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	var firstErr error
	for _, sink := range o.files {
		sink.mu.Lock()
		if err := sink.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		sink.mu.Unlock()
	}
	o.files = make(map[string]*fileSink)
	return firstErr
}
