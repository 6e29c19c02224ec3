package capture

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

const (
	// DefaultSamplePeriod yields 5 frames per second.
	DefaultSamplePeriod = 200 * time.Millisecond

	// DefaultFrameScale is the linear downscale applied per dimension.
	DefaultFrameScale = 0.25

	// DefaultJPEGQuality is the encoder quality for sampled frames.
	DefaultJPEGQuality = 70

	// DefaultResumeDelay is how long an ended source sits before it is
	// restarted from the beginning.
	DefaultResumeDelay = 15 * time.Second
)

// SourceType distinguishes a locally loaded video from an external embed.
// Frame sampling only runs for SourceVideo.
type SourceType int

const (
	SourceVideo SourceType = iota
	SourceEmbed
)

// FrameSource is the active video source. Frame returns the current frame or
// nil when none is available yet.
type FrameSource interface {
	Frame() image.Image
	Paused() bool
	Ended() bool
	SetPlaybackRate(rate float64)
	SeekStart() error
	Play() error
	Close() error
}

// Sampler runs the fixed-period frame sampling loop. It is armed only while
// connected with a video source loaded; at most one sampling loop is ever
// live. Every tick and timer callback re-checks the gating state under the
// lock before acting.
type Sampler struct {
	sink   ChunkSink
	logger *slog.Logger

	period      time.Duration
	scale       float64
	quality     int
	resumeDelay time.Duration

	mu          sync.Mutex
	source      FrameSource
	sourceType  SourceType
	connected   bool
	running     bool
	stop        chan struct{}
	epoch       int
	resumeTimer *time.Timer
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithSamplePeriod overrides the tick period.
func WithSamplePeriod(d time.Duration) SamplerOption {
	return func(s *Sampler) { s.period = d }
}

// WithResumeDelay overrides the restart delay after a source ends.
func WithResumeDelay(d time.Duration) SamplerOption {
	return func(s *Sampler) { s.resumeDelay = d }
}

// NewSampler creates an idle sampler.
func NewSampler(sink ChunkSink, logger *slog.Logger, opts ...SamplerOption) *Sampler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sampler{
		sink:        sink,
		logger:      logger,
		period:      DefaultSamplePeriod,
		scale:       DefaultFrameScale,
		quality:     DefaultJPEGQuality,
		resumeDelay: DefaultResumeDelay,
		sourceType:  SourceVideo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetConnected gates sampling on session connection state.
func (s *Sampler) SetConnected(connected bool) {
	s.mu.Lock()
	s.connected = connected
	s.evaluateLocked()
	s.mu.Unlock()
}

// SetSourceType switches between local video and embed mode. Embeds are
// rendered remotely, nothing is sampled for them.
func (s *Sampler) SetSourceType(t SourceType) {
	s.mu.Lock()
	s.sourceType = t
	s.evaluateLocked()
	s.mu.Unlock()
}

// SetSource replaces the active source. The previous source is closed,
// releasing its transient resources, and any pending resume is cancelled.
// A nil source clears the slot.
func (s *Sampler) SetSource(source FrameSource) {
	s.mu.Lock()
	old := s.source
	s.source = source
	s.cancelResumeLocked()
	s.evaluateLocked()
	s.mu.Unlock()

	if old != nil && old != source {
		if err := old.Close(); err != nil {
			s.logger.Warn("closing previous video source failed", "error", err)
		}
	}
}

// SetPlaybackRate forwards the rate to the active source. The sampling
// period is unaffected.
func (s *Sampler) SetPlaybackRate(rate float64) {
	s.mu.Lock()
	source := s.source
	s.mu.Unlock()
	if source != nil {
		source.SetPlaybackRate(rate)
	}
}

// Running reports whether the sampling loop is live.
func (s *Sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Close tears the sampler down and releases the active source.
func (s *Sampler) Close() {
	s.mu.Lock()
	s.connected = false
	source := s.source
	s.source = nil
	s.cancelResumeLocked()
	s.evaluateLocked()
	s.mu.Unlock()

	if source != nil {
		source.Close()
	}
}

// evaluateLocked starts or stops the sampling loop to match the gating
// conditions. The running flag keeps the loop a singleton.
func (s *Sampler) evaluateLocked() {
	armed := s.connected && s.source != nil && s.sourceType == SourceVideo
	switch {
	case armed && !s.running:
		s.running = true
		s.epoch++
		s.stop = make(chan struct{})
		go s.loop(s.epoch, s.stop)
	case !armed && s.running:
		s.running = false
		s.epoch++
		close(s.stop)
		s.stop = nil
	}
	if !armed {
		s.cancelResumeLocked()
	}
}

func (s *Sampler) cancelResumeLocked() {
	if s.resumeTimer != nil {
		s.resumeTimer.Stop()
		s.resumeTimer = nil
	}
}

func (s *Sampler) loop(epoch int, stop <-chan struct{}) {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.sampleOnce(epoch)
		}
	}
}

// sampleOnce captures, downscales, and sends one frame. Ticks while the
// source is paused or ended are skipped silently; an ended source schedules a
// delayed restart instead.
func (s *Sampler) sampleOnce(epoch int) {
	s.mu.Lock()
	if epoch != s.epoch || !s.running {
		s.mu.Unlock()
		return
	}
	source := s.source
	s.mu.Unlock()
	if source == nil {
		return
	}

	if source.Ended() {
		s.scheduleResume(epoch, source)
		return
	}
	if source.Paused() {
		return
	}

	frame := source.Frame()
	if frame == nil {
		return
	}
	data, err := s.encode(frame)
	if err != nil {
		s.logger.Warn("frame encode failed", "error", err)
		return
	}

	// The encode took time; drop the result if sampling was torn down
	// meanwhile.
	s.mu.Lock()
	stale := epoch != s.epoch || !s.running
	s.mu.Unlock()
	if stale {
		return
	}

	chunk := types.MediaChunk{MIMEType: types.MimeJPEG, Data: data}
	if err := s.sink.SendRealtimeInput(context.Background(), []types.MediaChunk{chunk}); err != nil {
		s.logger.Warn("frame send failed", "error", err)
	}
}

// encode downscales the frame and compresses it as JPEG.
func (s *Sampler) encode(frame image.Image) ([]byte, error) {
	bounds := frame.Bounds()
	w := int(float64(bounds.Dx()) * s.scale)
	h := int(float64(bounds.Dy()) * s.scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), frame, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// scheduleResume arms the delayed restart once per ended playthrough.
func (s *Sampler) scheduleResume(epoch int, source FrameSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch || s.resumeTimer != nil {
		return
	}
	s.resumeTimer = time.AfterFunc(s.resumeDelay, func() { s.resume(epoch, source) })
}

// resume restarts an ended source from the beginning. Fires only if the
// sampler still targets the same source in the same epoch; a restart refusal
// (autoplay style) is logged and the source stays put.
func (s *Sampler) resume(epoch int, source FrameSource) {
	s.mu.Lock()
	s.resumeTimer = nil
	if epoch != s.epoch || !s.running || s.source != source {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if err := source.SeekStart(); err != nil {
		s.logger.Warn("video restart seek failed", "error", err)
		return
	}
	if err := source.Play(); err != nil {
		s.logger.Warn("video restart blocked", "error", err)
	}
}
