package console

import (
	"bytes"
	"testing"

	"github.com/grafana/go-redblack/internal/cfg"
	"github.com/stretchr/testify/assert"
)

func draw(colored bool) string {
	if colored {
		return "colored\n"
	}
	return "plain\n"
}

func TestConsole_Tree(t *testing.T) {
	for level, want := range map[cfg.PrintLevel]string{
		cfg.PrintLevelColor: "colored\n",
		cfg.PrintLevelPlain: "plain\n",
		cfg.PrintLevelNone:  "",
	} {
		t.Run(level.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			New(buf, "run", cfg.ConsoleOptions{PrintLevel: level}, cfg.GrafanaOptions{}, false).Tree(draw)
			assert.Equal(t, want, buf.String())
		})
	}
}

func TestConsole_Summary(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, "run", cfg.ConsoleOptions{PrintLevel: cfg.PrintLevelPlain}, cfg.GrafanaOptions{}, false)

	c.Summary(Summary{Nodes: 8, Height: 4, BaselineHeight: 8, Min: 1, Max: 8})
	assert.Equal(t, "Nodes: 8, height: 4\nRange: [1, 8]\nUnbalanced height: 8\n", buf.String())

	buf.Reset()
	c.Summary(Summary{})
	assert.Equal(t, "Nodes: 0, height: 0\n", buf.String())
}

func TestConsole_Stop(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf, "abc", cfg.ConsoleOptions{}, cfg.GrafanaOptions{}, false).Stop()
	assert.Equal(t, "Run: abc\n", buf.String())

	buf.Reset()
	New(buf, "abc", cfg.ConsoleOptions{}, cfg.GrafanaOptions{URL: "http://localhost:3000", LokiDatasourceUID: "loki"}, true).Stop()
	assert.Contains(t, buf.String(), "http://localhost:3000/explore?left=")
}
