// Package capture implements the outbound media pipeline: gated microphone
// capture emitting fixed-format PCM chunks, and periodic video frame sampling
// with downscale and JPEG encoding. Both sub-pipelines re-validate their
// gating state before every emit, so a callback queued before a state change
// never leaks a chunk after it.
package capture

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

const (
	// micChunkBytes is 100ms of 16kHz mono s16le audio.
	micChunkBytes = 3200
)

// MicSource opens the platform microphone as a raw PCM stream
// (16kHz, mono, s16le).
type MicSource interface {
	Open() (io.ReadCloser, error)
}

// ChunkSink receives outbound media chunks. The session facade satisfies it.
type ChunkSink interface {
	SendRealtimeInput(ctx context.Context, chunks []types.MediaChunk) error
}

// Recorder gates microphone capture. Arm opens the source and streams chunks
// to the sink until Disarm; Disarm is synchronous, once it returns no further
// chunk is emitted until the next Arm. Both are idempotent.
type Recorder struct {
	source MicSource
	sink   ChunkSink
	logger *slog.Logger

	// inflight tracks sends in progress so Disarm can wait them out before
	// returning.
	inflight sync.WaitGroup

	mu     sync.Mutex
	armed  bool
	epoch  int
	stream io.ReadCloser
}

// NewRecorder creates a disarmed recorder.
func NewRecorder(source MicSource, sink ChunkSink, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{source: source, sink: sink, logger: logger}
}

// Armed reports whether capture is live.
func (r *Recorder) Armed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.armed
}

// Arm opens the microphone and starts streaming. Arming an armed recorder is
// a no-op.
func (r *Recorder) Arm() error {
	r.mu.Lock()
	if r.armed {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	stream, err := r.source.Open()
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.armed {
		// Lost the race to a concurrent Arm.
		r.mu.Unlock()
		stream.Close()
		return nil
	}
	r.armed = true
	r.epoch++
	r.stream = stream
	epoch := r.epoch
	r.mu.Unlock()

	go r.readLoop(stream, epoch)
	return nil
}

// Disarm stops capture immediately. Disarming a disarmed recorder is a no-op.
func (r *Recorder) Disarm() {
	r.mu.Lock()
	if !r.armed {
		r.mu.Unlock()
		return
	}
	r.armed = false
	r.epoch++
	stream := r.stream
	r.stream = nil
	r.mu.Unlock()

	if stream != nil {
		stream.Close()
	}

	// Wait for any in-flight send so no chunk lands after we return.
	r.inflight.Wait()
}

func (r *Recorder) readLoop(stream io.ReadCloser, epoch int) {
	buf := make([]byte, micChunkBytes)
	for {
		n, err := io.ReadFull(stream, buf)
		if n > 0 && !r.send(buf[:n], epoch) {
			return
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) && r.live(epoch) {
				r.logger.Warn("mic stream read failed", "error", err)
			}
			return
		}
	}
}

// send emits one chunk unless the recorder was disarmed since the read.
// Returns false once the epoch is stale.
func (r *Recorder) send(data []byte, epoch int) bool {
	r.mu.Lock()
	if !r.armed || epoch != r.epoch {
		r.mu.Unlock()
		return false
	}
	r.inflight.Add(1)
	r.mu.Unlock()
	defer r.inflight.Done()
	chunk := types.MediaChunk{
		MIMEType: types.MimePCM16k,
		Data:     append([]byte(nil), data...),
	}
	if err := r.sink.SendRealtimeInput(context.Background(), []types.MediaChunk{chunk}); err != nil {
		r.logger.Warn("audio chunk send failed", "error", err)
	}
	return true
}

func (r *Recorder) live(epoch int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.armed && epoch == r.epoch
}
