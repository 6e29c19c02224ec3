// Command pitchlive runs a continuous live pitch session against the Gemini
// Live API: it connects, kicks the assistant off, streams microphone audio
// and sampled video frames, and serves the running transcript over WebSocket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/eburon-ai/pitchlive/internal/dotenv"
	"github.com/eburon-ai/pitchlive/pkg/console"
	"github.com/eburon-ai/pitchlive/pkg/core/capture"
	"github.com/eburon-ai/pitchlive/pkg/core/compose"
	"github.com/eburon-ai/pitchlive/pkg/core/session"
	"github.com/eburon-ai/pitchlive/pkg/core/toolreg"
	"github.com/eburon-ai/pitchlive/pkg/core/topics"
	"github.com/eburon-ai/pitchlive/pkg/core/turns"
	"github.com/eburon-ai/pitchlive/pkg/core/types"
	"github.com/eburon-ai/pitchlive/pkg/gateway/gemini"
	"github.com/eburon-ai/pitchlive/pkg/logger"
	"github.com/eburon-ai/pitchlive/pkg/store/topicspg"
)

const defaultListenAddr = "127.0.0.1:8089"

type appConfig struct {
	APIKey     string
	Model      string
	Voice      string
	Language   string
	Style      string
	Pace       string
	Template   string
	TopicsDSN  string
	VideoPath  string
	ListenAddr string
	NoMic      bool
	Continuous bool
	Debug      bool
	JSONLogs   bool
}

func parseConfig(args []string, getenv func(string) string) (appConfig, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := appConfig{}
	fs := flag.NewFlagSet("pitchlive", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Model, "model", compose.DefaultModel, "Live API model")
	fs.StringVar(&cfg.Voice, "voice", compose.DefaultVoice, "prebuilt voice name")
	fs.StringVar(&cfg.Language, "language", compose.DefaultLanguage, "output language code")
	fs.StringVar(&cfg.Style, "style", compose.DefaultStyle, "voice style id")
	fs.StringVar(&cfg.Pace, "pace", compose.DefaultPace, "speech pace id")
	fs.StringVar(&cfg.Template, "template", "", "tool template (customer-support, personal-assistant, navigation-system)")
	fs.StringVar(&cfg.TopicsDSN, "topics-dsn", strings.TrimSpace(getenv("PITCHLIVE_TOPICS_DSN")), "PostgreSQL DSN for the topic store (or PITCHLIVE_TOPICS_DSN)")
	fs.StringVar(&cfg.VideoPath, "video", "", "optional video file to sample frames from")
	fs.StringVar(&cfg.ListenAddr, "listen", defaultListenAddr, "transcript WebSocket listen address")
	fs.BoolVar(&cfg.NoMic, "no-mic", false, "disable microphone capture")
	fs.BoolVar(&cfg.Continuous, "continuous", true, "auto-continue the narration after each turn")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&cfg.JSONLogs, "json-logs", false, "emit JSON logs instead of pretty output")

	if err := fs.Parse(args); err != nil {
		return appConfig{}, err
	}

	cfg.APIKey = strings.TrimSpace(getenv("GEMINI_API_KEY"))
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(getenv("GOOGLE_API_KEY"))
	}
	if cfg.APIKey == "" {
		return appConfig{}, errors.New("GEMINI_API_KEY (or GOOGLE_API_KEY) is required")
	}
	return cfg, nil
}

func main() {
	if err := dotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig) error {
	log := logger.New(
		logger.WithDebug(cfg.Debug),
		logger.WithJSON(cfg.JSONLogs),
		logger.WithPretty(!cfg.JSONLogs),
	)

	settings := compose.NewSettings()
	settings.SetModel(cfg.Model)
	settings.SetVoice(cfg.Voice)
	settings.SetLanguage(cfg.Language)
	settings.SetVoiceStyle(cfg.Style)
	settings.SetSpeechPace(cfg.Pace)

	registry := toolreg.NewRegistry()
	if cfg.Template != "" {
		tmpl := toolreg.Template(cfg.Template)
		if err := registry.SetTemplate(tmpl); err != nil {
			return err
		}
		settings.SetSystemPrompt(toolreg.SystemPrompt(tmpl))
	}

	var store topics.Store
	if cfg.TopicsDSN != "" {
		pg, err := topicspg.Open(ctx, cfg.TopicsDSN)
		if err != nil {
			log.Warn("topic store unavailable", "error", err)
		} else {
			defer pg.Close()
			store = pg
		}
	}
	catalog := topics.NewCatalog(store, log)
	catalog.Load(ctx)
	if topic := catalog.Selected(); topic != nil {
		log.Info("topic selected", "title", topic.Title)
	}

	client, err := gemini.NewClient(cfg.APIKey, log)
	if err != nil {
		return err
	}

	ledger := turns.NewLedger()
	aggregator := turns.NewAggregator(ledger)

	opts := []session.Option{session.WithScheduling(registry)}

	if !cfg.NoMic {
		mic, err := capture.NewFFmpegMic()
		if err != nil {
			log.Warn("microphone disabled", "error", err)
		} else {
			opts = append(opts, session.WithMicGate(capture.NewRecorder(mic, client, log)))
		}
	}

	sampler := capture.NewSampler(client, log)
	defer sampler.Close()
	if cfg.VideoPath != "" {
		source, err := capture.NewFileFrameSource(cfg.VideoPath, log)
		if err != nil {
			return fmt.Errorf("open video source: %w", err)
		}
		sampler.SetSource(source)
	}
	opts = append(opts, session.WithVideoGate(sampler))

	composeFn := func() types.SessionConfig {
		return compose.Compose(settings.Snapshot(), catalog.Selected(), registry.Declarations())
	}
	controller := session.NewController(client, aggregator, composeFn, log, opts...)

	feed := console.NewServer(ledger, controller, log)
	defer feed.Close()
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: feed}
	go func() {
		log.Info("transcript feed listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("transcript feed failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := controller.Connect(ctx); err != nil {
		return err
	}
	defer controller.Disconnect()
	controller.SetContinuousMode(cfg.Continuous)
	log.Info("session connected", "model", cfg.Model, "voice", cfg.Voice, "language", cfg.Language)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return nil
		case event := <-controller.Events():
			logEvent(log, event)
			if _, closed := event.(*session.SessionClosedEvent); closed {
				return nil
			}
		}
	}
}

func logEvent(log *slog.Logger, event session.Event) {
	switch e := event.(type) {
	case *session.StateChangedEvent:
		log.Info("session state", "from", e.From.String(), "to", e.To.String())
	case *session.KickoffSentEvent:
		log.Info("kickoff sent")
	case *session.ContinuationSentEvent:
		log.Debug("continuation sent")
	case *session.SessionClosedEvent:
		if e.Reason != "" {
			log.Warn("session closed", "reason", e.Reason)
		} else {
			log.Info("session closed")
		}
	case *session.ErrorEvent:
		log.Warn("session error", "message", e.Message)
	default:
		log.Debug("session event", "type", event.EventType())
	}
}
