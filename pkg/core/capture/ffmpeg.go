package capture

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sync"
)

const (
	micSampleRateHz = 16000

	frameWidth  = 640
	frameHeight = 360
	frameBytes  = frameWidth * frameHeight * 4
)

// FFmpegMic opens the platform microphone through an ffmpeg subprocess,
// producing 16kHz mono s16le PCM on stdout.
type FFmpegMic struct{}

// NewFFmpegMic verifies ffmpeg is available.
func NewFFmpegMic() (*FFmpegMic, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, errors.New("ffmpeg is required for mic capture (install ffmpeg and ensure it is in PATH)")
	}
	return &FFmpegMic{}, nil
}

// Open starts the capture subprocess. Closing the returned stream kills it.
func (m *FFmpegMic) Open() (io.ReadCloser, error) {
	args, err := micFFmpegArgs(runtime.GOOS)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command("ffmpeg", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open ffmpeg stdout: %w", err)
	}
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg mic capture: %w", err)
	}
	return &processStream{cmd: cmd, stdout: stdout}, nil
}

func micFFmpegArgs(goos string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{
			"-hide_banner", "-loglevel", "error",
			"-f", "avfoundation", "-i", ":0",
			"-ac", "1", "-ar", fmt.Sprintf("%d", micSampleRateHz),
			"-f", "s16le", "-",
		}, nil
	case "linux":
		return []string{
			"-hide_banner", "-loglevel", "error",
			"-f", "pulse", "-i", "default",
			"-ac", "1", "-ar", fmt.Sprintf("%d", micSampleRateHz),
			"-f", "s16le", "-",
		}, nil
	default:
		return nil, fmt.Errorf("mic capture is not implemented for %s; supported platforms: darwin, linux", goos)
	}
}

// processStream wraps a subprocess stdout; Close kills the process.
type processStream struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

func (p *processStream) Read(b []byte) (int, error) {
	if p == nil || p.stdout == nil {
		return 0, io.EOF
	}
	return p.stdout.Read(b)
}

func (p *processStream) Close() error {
	if p == nil {
		return nil
	}
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
		_ = p.cmd.Wait()
	}
	return nil
}

// FileFrameSource decodes a local video file with ffmpeg into raw RGBA
// frames at realtime pacing, keeping only the most recent frame for the
// sampler to pick up.
type FileFrameSource struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	stream *processStream
	frame  *image.RGBA
	paused bool
	ended  bool
	rate   float64
	gen    int
}

// NewFileFrameSource validates the file and decoder, then starts playback.
func NewFileFrameSource(path string, logger *slog.Logger) (*FileFrameSource, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, errors.New("ffmpeg is required for video playback (install ffmpeg and ensure it is in PATH)")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("video file: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	f := &FileFrameSource{path: path, logger: logger, rate: 1.0}
	if err := f.Play(); err != nil {
		return nil, err
	}
	return f, nil
}

// Frame returns a copy of the most recent decoded frame, or nil before the
// first frame arrives.
func (f *FileFrameSource) Frame() image.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.frame == nil {
		return nil
	}
	out := image.NewRGBA(f.frame.Rect)
	copy(out.Pix, f.frame.Pix)
	return out
}

// Paused reports whether playback is paused.
func (f *FileFrameSource) Paused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused
}

// Ended reports whether the file played through.
func (f *FileFrameSource) Ended() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ended
}

// Pause stops frame updates without tearing down the decoder state.
func (f *FileFrameSource) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = true
}

// SetPlaybackRate changes the decode pacing. Takes effect on the next
// restart of the decoder.
func (f *FileFrameSource) SetPlaybackRate(rate float64) {
	if rate <= 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rate = rate
}

// SeekStart restarts decoding from the beginning of the file.
func (f *FileFrameSource) SeekStart() error {
	f.mu.Lock()
	stream := f.stream
	f.stream = nil
	f.ended = false
	f.mu.Unlock()
	if stream != nil {
		stream.Close()
	}
	return f.Play()
}

// Play resumes a paused source, starting the decoder if needed.
func (f *FileFrameSource) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.paused = false
	if f.stream != nil {
		return nil
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-re", "-i", f.path, "-an",
		"-vf", fmt.Sprintf("scale=%d:%d,setpts=PTS/%g", frameWidth, frameHeight, f.rate),
		"-f", "rawvideo", "-pix_fmt", "rgba", "-",
	}
	cmd := exec.Command("ffmpeg", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("open ffmpeg stdout: %w", err)
	}
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg decode: %w", err)
	}

	f.stream = &processStream{cmd: cmd, stdout: stdout}
	f.ended = false
	f.gen++
	go f.readFrames(f.stream, f.gen)
	return nil
}

// Close kills the decoder.
func (f *FileFrameSource) Close() error {
	f.mu.Lock()
	stream := f.stream
	f.stream = nil
	f.gen++
	f.mu.Unlock()
	if stream != nil {
		return stream.Close()
	}
	return nil
}

func (f *FileFrameSource) readFrames(stream *processStream, gen int) {
	buf := make([]byte, frameBytes)
	for {
		if _, err := io.ReadFull(stream, buf); err != nil {
			f.mu.Lock()
			if gen == f.gen {
				f.ended = true
				f.stream = nil
			}
			f.mu.Unlock()
			stream.Close()
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				f.logger.Warn("video decode stopped", "error", err)
			}
			return
		}

		f.mu.Lock()
		if gen != f.gen {
			f.mu.Unlock()
			stream.Close()
			return
		}
		if !f.paused {
			if f.frame == nil {
				f.frame = image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight))
			}
			copy(f.frame.Pix, buf)
		}
		f.mu.Unlock()
	}
}
