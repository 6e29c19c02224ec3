package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"sync"
	"testing"
	"time"

	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

type fakeFrameSource struct {
	mu     sync.Mutex
	frame  image.Image
	paused bool
	ended  bool
	rate   float64
	seeks  int
	plays  int
	closes int
}

func newFakeFrameSource() *fakeFrameSource {
	img := image.NewRGBA(image.Rect(0, 0, 64, 36))
	for y := 0; y < 36; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return &fakeFrameSource{frame: img, rate: 1.0}
}

func (f *fakeFrameSource) Frame() image.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frame
}

func (f *fakeFrameSource) Paused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused
}

func (f *fakeFrameSource) Ended() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ended
}

func (f *fakeFrameSource) SetPlaybackRate(rate float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rate = rate
}

func (f *fakeFrameSource) SeekStart() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeks++
	f.ended = false
	return nil
}

func (f *fakeFrameSource) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays++
	f.paused = false
	return nil
}

func (f *fakeFrameSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	return nil
}

func (f *fakeFrameSource) set(mut func(*fakeFrameSource)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mut(f)
}

func (f *fakeFrameSource) stat(get func(*fakeFrameSource) int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return get(f)
}

func testSampler(sink ChunkSink, opts ...SamplerOption) *Sampler {
	base := []SamplerOption{WithSamplePeriod(10 * time.Millisecond)}
	return NewSampler(sink, discardLogger(), append(base, opts...)...)
}

func TestSamplerSendsScaledJPEGFrames(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	s := testSampler(sink)
	defer s.Close()

	s.SetSource(newFakeFrameSource())
	s.SetConnected(true)

	waitFor(t, func() bool { return sink.count() >= 1 }, "no frame sampled")

	chunk := sink.snapshot()[0]
	if chunk.MIMEType != types.MimeJPEG {
		t.Fatalf("mime = %q", chunk.MIMEType)
	}
	img, err := jpeg.Decode(bytes.NewReader(chunk.Data))
	if err != nil {
		t.Fatalf("payload is not JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Fatalf("frame not downscaled by 0.25: %dx%d", b.Dx(), b.Dy())
	}
}

func TestSamplerIdleUntilFullyGated(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	s := testSampler(sink)
	defer s.Close()

	s.SetConnected(true)
	if s.Running() {
		t.Fatal("running without a source")
	}
	s.SetConnected(false)
	s.SetSource(newFakeFrameSource())
	if s.Running() {
		t.Fatal("running while disconnected")
	}
	s.SetConnected(true)
	if !s.Running() {
		t.Fatal("not running with source and connection")
	}
	s.SetSourceType(SourceEmbed)
	if s.Running() {
		t.Fatal("running in embed mode")
	}
}

func TestSamplerSkipsPausedTicks(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	s := testSampler(sink)
	defer s.Close()

	src := newFakeFrameSource()
	src.set(func(f *fakeFrameSource) { f.paused = true })
	s.SetSource(src)
	s.SetConnected(true)

	time.Sleep(60 * time.Millisecond)
	if sink.count() != 0 {
		t.Fatalf("%d frames sampled from a paused source", sink.count())
	}

	src.set(func(f *fakeFrameSource) { f.paused = false })
	waitFor(t, func() bool { return sink.count() >= 1 }, "no frame after unpause")
}

func TestSamplerStopsOnDisconnect(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	s := testSampler(sink)
	defer s.Close()

	s.SetSource(newFakeFrameSource())
	s.SetConnected(true)
	waitFor(t, func() bool { return sink.count() >= 1 }, "no frame sampled")

	s.SetConnected(false)
	if s.Running() {
		t.Fatal("still running after disconnect")
	}
	base := sink.count()
	time.Sleep(60 * time.Millisecond)
	if got := sink.count(); got != base {
		t.Fatalf("frames leaked after disconnect: %d -> %d", base, got)
	}
}

func TestSamplerResumesEndedSourceAfterDelay(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	s := testSampler(sink, WithResumeDelay(40*time.Millisecond))
	defer s.Close()

	src := newFakeFrameSource()
	src.set(func(f *fakeFrameSource) { f.ended = true })
	s.SetSource(src)
	s.SetConnected(true)

	// No frame and no early restart while the delay is pending.
	time.Sleep(20 * time.Millisecond)
	if sink.count() != 0 {
		t.Fatal("frame sampled from an ended source")
	}
	if src.stat(func(f *fakeFrameSource) int { return f.seeks }) != 0 {
		t.Fatal("restarted before the delay elapsed")
	}

	waitFor(t, func() bool {
		return src.stat(func(f *fakeFrameSource) int { return f.seeks }) == 1
	}, "source never restarted")
	waitFor(t, func() bool { return sink.count() >= 1 }, "no frame after restart")
}

func TestSamplerDisconnectCancelsPendingResume(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	s := testSampler(sink, WithResumeDelay(40*time.Millisecond))
	defer s.Close()

	src := newFakeFrameSource()
	src.set(func(f *fakeFrameSource) { f.ended = true })
	s.SetSource(src)
	s.SetConnected(true)

	// Let a tick observe the ended source and schedule the resume.
	time.Sleep(25 * time.Millisecond)
	s.SetConnected(false)

	time.Sleep(80 * time.Millisecond)
	if n := src.stat(func(f *fakeFrameSource) int { return f.seeks }); n != 0 {
		t.Fatalf("resume fired after disconnect (%d seeks)", n)
	}
	if sink.count() != 0 {
		t.Fatal("frame sent after disconnect")
	}
}

func TestSamplerSourceSwapClosesPreviousAndCancelsResume(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	s := testSampler(sink, WithResumeDelay(40*time.Millisecond))
	defer s.Close()

	old := newFakeFrameSource()
	old.set(func(f *fakeFrameSource) { f.ended = true })
	s.SetSource(old)
	s.SetConnected(true)
	time.Sleep(25 * time.Millisecond)

	replacement := newFakeFrameSource()
	s.SetSource(replacement)

	if old.stat(func(f *fakeFrameSource) int { return f.closes }) != 1 {
		t.Fatal("previous source not released on swap")
	}
	time.Sleep(80 * time.Millisecond)
	if old.stat(func(f *fakeFrameSource) int { return f.seeks }) != 0 {
		t.Fatal("stale resume restarted the replaced source")
	}
	if !s.Running() {
		t.Fatal("sampler not running on the replacement source")
	}
}

func TestSamplerPlaybackRatePassthrough(t *testing.T) {
	t.Parallel()

	s := testSampler(&recordingSink{})
	defer s.Close()

	src := newFakeFrameSource()
	s.SetSource(src)
	s.SetPlaybackRate(1.5)

	src.mu.Lock()
	rate := src.rate
	src.mu.Unlock()
	if rate != 1.5 {
		t.Fatalf("rate = %v", rate)
	}
}
