package math

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/glmath/internal/config"
	"github.com/Faultbox/glmath/internal/logger"
)

// DefaultEpsilon is the tolerance used by ApproxEqual when the caller passes
// a non-positive epsilon and no configuration overrides it.
const DefaultEpsilon = 1e-6

type settings struct {
	log     *zap.Logger
	epsilon float64
}

var current atomic.Pointer[settings]

func init() {
	current.Store(&settings{log: zap.NewNop(), epsilon: DefaultEpsilon})
}

func diag() *zap.Logger { return current.Load().log }

// update applies fn to a copy of the current settings and publishes it,
// retrying when another setter got there first.
func update(fn func(s *settings)) (old *settings) {
	for {
		old = current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return old
		}
	}
}

// SetLogger replaces the logger that reports guarded no-ops such as
// singular inversions. A nil logger disables reporting.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	update(func(s *settings) { s.log = l })
}

// SetEpsilon sets the default tolerance for ApproxEqual.
func SetEpsilon(eps float64) {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	update(func(s *settings) { s.epsilon = eps })
}

// Epsilon returns the default tolerance for ApproxEqual.
func Epsilon() float64 { return current.Load().epsilon }

// Configure loads the configuration file at path (or searches the standard
// locations when path is empty), builds the diagnostics logger from its
// logging section and applies its numeric settings.
func Configure(path string) error {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	return Apply(cfg)
}

// Apply applies an already loaded configuration. The previous logger is
// flushed once it has been replaced.
func Apply(cfg *config.Config) error {
	l, err := logger.New(cfg.Logging.Level, logger.FileConfig{
		Path:       cfg.Logging.LogFile,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, cfg.Logging.Console)
	if err != nil {
		return fmt.Errorf("building diagnostics logger: %w", err)
	}

	eps := cfg.Numeric.Epsilon
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	named := l.Named("glmath")
	old := update(func(s *settings) {
		s.log = named
		s.epsilon = eps
	})
	_ = old.log.Sync()

	named.Debug("diagnostics configured",
		zap.String("level", cfg.Logging.Level),
		zap.Float64("epsilon", eps))
	return nil
}

// Sync flushes the diagnostics logger.
func Sync() {
	_ = diag().Sync()
}

// tolerance resolves an ApproxEqual epsilon argument.
func tolerance[T Scalar](eps T) T {
	if eps > 0 {
		return eps
	}
	e := Epsilon()
	return T(e)
}

func within[T Scalar](a, b, eps T) bool {
	return Abs(a-b) <= eps
}
