package purefn

import (
	"github.com/on-the-ground/funcutils/pure"
	"github.com/on-the-ground/funcutils/shared/caller"
	"go.uber.org/zap"
)

// HitPolicy decides whether a stored result may be returned without calling
// the wrapped function.
type HitPolicy int

const (
	// HitOnPresence treats every stored result as a hit.
	HitOnPresence HitPolicy = iota

	// HitOnTruthy treats a stored result as a hit only when it is
	// pure.Truthy. Falsy results such as 0, "" or empty slices are
	// recomputed on every call.
	HitOnTruthy
)

func (p HitPolicy) String() string {
	switch p {
	case HitOnPresence:
		return "presence"
	case HitOnTruthy:
		return "truthy"
	default:
		return "unknown"
	}
}

func (p HitPolicy) hit(v any) bool {
	if p == HitOnTruthy {
		return pure.Truthy(v)
	}
	return true
}

// Option configures a memoizer.
type Option func(*config)

type config struct {
	logger *zap.Logger
	name   string
	policy HitPolicy
}

// WithLogger sets the logger for hit and miss diagnostics.
// Defaults to zap.L() named "funcutils.memoize".
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithName sets the name logged with every line. Defaults to the function
// that applied the decorator.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithHitPolicy selects the hit policy.
func WithHitPolicy(policy HitPolicy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

// WithTruthyHits is shorthand for WithHitPolicy(HitOnTruthy).
func WithTruthyHits() Option {
	return WithHitPolicy(HitOnTruthy)
}

func newConfig(opts []Option) config {
	c := config{policy: HitOnPresence}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = zap.L().Named("funcutils.memoize")
	}
	return c
}

// named fills in the default name from the frame levelsDown above named.
func (c config) named(levelsDown int) config {
	if c.name != "" {
		return c
	}
	if frame, err := caller.Info(levelsDown); err == nil {
		c.name = frame.String()
	} else {
		c.name = "unknown"
	}
	return c
}
