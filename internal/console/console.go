package console

import (
	"fmt"
	"io"

	"github.com/grafana/go-redblack/internal/cfg"
	"github.com/grafana/go-redblack/internal/grafana/explore"
	"github.com/grafana/go-redblack/internal/loki"
)

type Console struct {
	out     io.Writer
	runID   string
	options cfg.ConsoleOptions
	grafana cfg.GrafanaOptions
	link    bool
}

// New returns a console writing to out. When link is set, Stop prints a
// Grafana Explore link to the run's log lines.
func New(out io.Writer, runID string, options cfg.ConsoleOptions, grafana cfg.GrafanaOptions, link bool) *Console {
	return &Console{
		out:     out,
		runID:   runID,
		options: options,
		grafana: grafana,
		link:    link,
	}
}

// Tree prints the drawing produced by draw, colored or not depending on the
// print level.
func (c *Console) Tree(draw func(colored bool) string) {
	switch c.options.PrintLevel {
	case cfg.PrintLevelNone:
		return
	case cfg.PrintLevelColor:
		fmt.Fprint(c.out, draw(true))
	default:
		fmt.Fprint(c.out, draw(false))
	}
}

type Summary struct {
	Nodes  int
	Height int
	// BaselineHeight is the height of an unbalanced tree fed the same
	// values, zero when no comparison ran.
	BaselineHeight int
	Min, Max       any
}

func (c *Console) Summary(s Summary) {
	fmt.Fprintf(c.out, "Nodes: %d, height: %d\n", s.Nodes, s.Height)
	if s.Nodes > 0 {
		fmt.Fprintf(c.out, "Range: [%v, %v]\n", s.Min, s.Max)
	}
	if s.BaselineHeight > 0 {
		fmt.Fprintf(c.out, "Unbalanced height: %d\n", s.BaselineHeight)
	}
}

func (c *Console) Stop() {
	fmt.Fprintln(c.out, "Run:", c.runID)
	if !c.link {
		return
	}
	fmt.Fprintln(c.out, explore.ExploreLink{
		GrafanaURL:    c.grafana.URL,
		DataSource:    c.grafana.LokiDatasource,
		DataSourceUID: c.grafana.LokiDatasourceUID,
		Source:        loki.Source,
		RunID:         c.runID,
	})
}
