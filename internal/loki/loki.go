// Package loki ships log lines to a Loki push endpoint.
package loki

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/grafana/go-redblack/internal/cfg"
	"github.com/grafana/loki-client-go/loki"
	"github.com/grafana/loki-client-go/pkg/backoff"
	"github.com/grafana/loki-client-go/pkg/urlutil"
	"github.com/prometheus/common/config"
	"github.com/prometheus/common/model"
)

const Source = "go-redblack"

var ErrStopped = errors.New("loki client is stopped")

// Client is a log.Logger that formats every record as logfmt and hands it
// to a batching Loki client under a fixed label set.
type Client struct {
	client *loki.Client
	labels model.LabelSet

	mu      sync.RWMutex
	stopped bool
}

// New starts a client. Tags that are valid label names become stream
// labels next to source.
func New(opts cfg.LokiOptions, tags cfg.Tags) (*Client, error) {
	retries := opts.Retries
	if retries < 1 {
		retries = 1
	}
	return newClient(opts, tags, backoff.BackoffConfig{
		MinBackoff: 100 * time.Millisecond,
		MaxBackoff: 5 * time.Second,
		MaxRetries: retries,
	})
}

func newClient(opts cfg.LokiOptions, tags cfg.Tags, bc backoff.BackoffConfig) (*Client, error) {
	if opts.BatchSize < 1 || opts.BatchWait <= 0 {
		return nil, fmt.Errorf("loki batch size and batch wait must be positive, got %d and %s", opts.BatchSize, opts.BatchWait)
	}

	var lokiURL urlutil.URLValue
	if err := lokiURL.Set(opts.URL); err != nil {
		return nil, fmt.Errorf("invalid Loki URL: %w", err)
	}

	labels := model.LabelSet{"source": Source}
	for key, value := range tags {
		if name := model.LabelName(key); name.IsValid() {
			labels[name] = model.LabelValue(value)
		}
	}
	if err := labels.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Loki labels: %w", err)
	}

	client, err := loki.New(loki.Config{
		URL:           lokiURL,
		BatchWait:     opts.BatchWait,
		BatchSize:     opts.BatchSize,
		Client:        config.HTTPClientConfig{},
		BackoffConfig: bc,
		Timeout:       opts.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Loki client: %w", err)
	}

	return &Client{client: client, labels: labels}, nil
}

func (c *Client) Log(keyvals ...any) error {
	buf := &bytes.Buffer{}
	if err := log.NewLogfmtLogger(buf).Log(keyvals...); err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.stopped {
		return ErrStopped
	}
	return c.client.Handle(c.labels, time.Now(), string(bytes.TrimRight(buf.Bytes(), "\n")))
}

// Stop flushes pending lines and waits for the last push. Later calls to
// Log return ErrStopped.
func (c *Client) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	c.client.Stop()
}
