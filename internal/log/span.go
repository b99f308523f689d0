package log

import (
	"context"
	"sync"
)

// Tracer emits one span per traced operation. The default tracer is a
// no-op; a build with -tags otel provides an OpenTelemetry-backed
// NewOTelTracer, which a caller installs with SetTracer. cmd/pqx does not
// install one.
type Tracer interface {
	StartSpan(ctx context.Context, name string, attrs map[string]interface{}) (context.Context, SpanEnder)
}

// SpanEnder ends a span. Call with nil for success, or an error to mark the
// span failed.
type SpanEnder func(err error)

// Span names for the three traced operation boundaries.
const (
	SpanCertificateBuild = "pqx.certificate.build"
	SpanCMSBuild         = "pqx.cms.build"
	SpanCMSOpen          = "pqx.cms.open"
)

// NoOpTracer discards every span. It is the default global tracer.
type NoOpTracer struct{}

// StartSpan returns ctx unchanged and a no-op ender.
func (NoOpTracer) StartSpan(ctx context.Context, name string, attrs map[string]interface{}) (context.Context, SpanEnder) {
	return ctx, func(error) {}
}

var (
	globalTracer   Tracer = NoOpTracer{}
	globalTracerMu sync.RWMutex
)

// SetTracer sets the global tracer.
func SetTracer(t Tracer) {
	globalTracerMu.Lock()
	defer globalTracerMu.Unlock()
	globalTracer = t
}

// GetTracer returns the global tracer.
func GetTracer() Tracer {
	globalTracerMu.RLock()
	defer globalTracerMu.RUnlock()
	return globalTracer
}

// StartSpan starts a span on the global tracer and logs a debug line
// alongside it, matching the "one log line, one span" boundary contract.
func StartSpan(ctx context.Context, name string, attrs map[string]interface{}) (context.Context, SpanEnder) {
	ctx, end := GetTracer().StartSpan(ctx, name, attrs)
	Global().Debug(name+" started", Fields(attrs))
	return ctx, func(err error) {
		end(err)
		if err != nil {
			Global().Error(name+" failed", Fields{"error": err.Error()})
		} else {
			Global().Debug(name + " ok")
		}
	}
}
