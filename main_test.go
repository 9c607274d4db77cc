package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"5", " 3", "", "8"})
	assert.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8}, values)

	values, err = parseValues([]string{"1", "two", "3"})
	assert.Error(t, err)
	assert.Equal(t, []int{1, 3}, values)
}

func TestTee(t *testing.T) {
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	logger := tee{log.NewLogfmtLogger(a), log.NewLogfmtLogger(b)}

	assert.NoError(t, logger.Log("msg", "hello", "value", 4))
	assert.Equal(t, "msg=hello value=4\n", a.String())
	assert.Equal(t, a.String(), b.String())
}

func TestNewRunID(t *testing.T) {
	id := newRunID()
	assert.Len(t, id, 16)
	assert.NotEqual(t, id, newRunID())
}

type stopRecorder struct {
	name  string
	order *[]string
}

func (s stopRecorder) Stop() {
	*s.order = append(*s.order, s.name)
}

func TestFinish(t *testing.T) {
	var order []string
	flushed := false
	shutdown := func(context.Context) error {
		flushed = true
		order = append(order, "tracing")
		return errors.New("collector unreachable")
	}
	buf := &bytes.Buffer{}
	span := trace.SpanFromContext(context.Background())

	finish(span, shutdown, []stoppable{
		stopRecorder{name: "loki", order: &order},
		stopRecorder{name: "console", order: &order},
	}, log.NewLogfmtLogger(buf))

	assert.True(t, flushed)
	assert.Equal(t, []string{"tracing", "loki", "console"}, order)
	assert.Contains(t, buf.String(), "collector unreachable")
}
