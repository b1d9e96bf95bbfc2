package observability

import (
	"time"

	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors of one effect process. It uses its own
// registry so that tests and embedding hosts do not share global state.
type Metrics struct {
	registry *prometheus.Registry

	frames        prometheus.Counter
	frameDuration prometheus.Histogram
	keypresses    *prometheus.CounterVec
	paramUpdates  *prometheus.CounterVec
	skippedLines  *prometheus.CounterVec
	keys          prometheus.Gauge
	runsEnded     prometheus.Counter
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ckbfx_frames_total",
			Help: "Total number of frames sent to the daemon",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ckbfx_frame_duration_seconds",
			Help:    "Time spent computing and writing a frame",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		keypresses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ckbfx_keypresses_total",
			Help: "Keypress events dispatched to the effect",
		}, []string{"direction"}),
		paramUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ckbfx_param_updates_total",
			Help: "Parameter values received from the daemon",
		}, []string{"param"}),
		skippedLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ckbfx_skipped_lines_total",
			Help: "Lines that did not match the grammar of the current state",
		}, []string{"state"}),
		keys: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ckbfx_keys",
			Help: "Number of keys in the session keymap",
		}),
		runsEnded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ckbfx_runs_ended_total",
			Help: "Sessions that ended with \"end run\"",
		}),
	}
	m.registry.MustRegister(
		m.frames, m.frameDuration, m.keypresses, m.paramUpdates,
		m.skippedLines, m.keys, m.runsEnded,
	)
	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns engine hooks that update the collectors.
func (m *Metrics) Hooks() protocol.Hooks {
	return protocol.Hooks{
		OnKeymapLoaded: func(keys *protocol.Keymap) {
			m.keys.Set(float64(keys.Len()))
		},
		OnParamsApplied: func(_ *param.Set, changed []string) {
			for _, name := range changed {
				m.paramUpdates.WithLabelValues(name).Inc()
			}
		},
		OnKeypress: func(_ *protocol.Key, pressed bool) {
			direction := "up"
			if pressed {
				direction = "down"
			}
			m.keypresses.WithLabelValues(direction).Inc()
		},
		OnFrame: func(_ *protocol.Keymap, elapsed time.Duration) {
			m.frames.Inc()
			m.frameDuration.Observe(elapsed.Seconds())
		},
		OnLineSkipped: func(state protocol.State, _ string) {
			m.skippedLines.WithLabelValues(state.String()).Inc()
		},
		OnRunEnded: func(*protocol.Keymap, *param.Set) {
			m.runsEnded.Inc()
		},
	}
}

// WriteTextfile dumps the current values in the text exposition format, for
// node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
