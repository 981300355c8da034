// Package metrics exports graph activity to Prometheus.
package metrics

import (
	"github.com/delaneyj/uiobserver/uio"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the Prometheus recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "uiobserver").
	Namespace string

	// Subsystem is the metrics subsystem (default: "graph").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "uiobserver",
		Subsystem: "graph",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Recorder implements uio.Recorder with Prometheus collectors. Attach it to
// a pool with uio.WithRecorder.
type Recorder struct {
	interned      *prometheus.CounterVec
	released      *prometheus.CounterVec
	live          *prometheus.GaugeVec
	resolves      *prometheus.CounterVec
	notifications prometheus.Counter
}

var _ uio.Recorder = (*Recorder)(nil)

// New registers the collectors. It panics if they are already registered on
// the chosen registry, as promauto does.
func New(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Recorder{
		interned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "instances_interned_total",
			Help:        "Intern calls by instance kind and whether a live instance was reused",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "reused"}),

		released: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "instances_released_total",
			Help:        "Instances removed from the pool after their last reference was dropped",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		live: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "instances_live",
			Help:        "Instances currently in the pool",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		resolves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolves_total",
			Help:        "Instance resolutions by whether the function was called",
			ConstLabels: config.ConstLabels,
		}, []string{"result"}),

		notifications: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "observer_notifications_total",
			Help:        "onChange callbacks delivered to observers",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (r *Recorder) InstanceInterned(kind uio.Kind, reused bool) {
	if reused {
		r.interned.WithLabelValues(kind.String(), "true").Inc()
		return
	}
	r.interned.WithLabelValues(kind.String(), "false").Inc()
	r.live.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) InstanceReleased(kind uio.Kind) {
	r.released.WithLabelValues(kind.String()).Inc()
	r.live.WithLabelValues(kind.String()).Dec()
}

func (r *Recorder) InstanceResolved(recomputed bool) {
	if recomputed {
		r.resolves.WithLabelValues("computed").Inc()
		return
	}
	r.resolves.WithLabelValues("cached").Inc()
}

func (r *Recorder) ObserverNotified() {
	r.notifications.Inc()
}
