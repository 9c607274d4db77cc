package cfg

import (
	"errors"
	"fmt"
)

const (
	TracingKind = "TRACING_KIND"
	TracingURL  = "TRACING_URL"
)

const (
	TracingKindJaeger = "jaeger"
	TracingKindNone   = "none"
)

type TracingOptions struct {
	Kind string
	URL  string
}

func (o TracingOptions) Enabled() bool {
	return o.Kind != TracingKindNone
}

func (c Config) Tracing() (TracingOptions, error) {
	kind, kindErr := c.Get(TracingKind)
	url, urlErr := c.Get(TracingURL)

	if err := errors.Join(kindErr, urlErr); err != nil {
		return TracingOptions{}, fmt.Errorf("failed to get tracing configuration options: %w", err)
	}

	if kind != TracingKindJaeger && kind != TracingKindNone {
		return TracingOptions{}, fmt.Errorf("failed to parse tracing configuration options: kind must be '%s' or '%s', got '%s'", TracingKindJaeger, TracingKindNone, kind)
	}

	return TracingOptions{
		Kind: kind,
		URL:  url,
	}, nil
}
