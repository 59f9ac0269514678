package stats

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mgtv-tech/hashchain-go/logger"
	"github.com/mgtv-tech/hashchain-go/util"
)

const defaultStatsInterval = time.Minute

var (
	once  sync.Once
	inner *innerStats
	_     Handler = (*Stats)(nil)
)

type (
	Stats struct {
		Options
		Name  string
		Hit   uint64
		Miss  uint64
		Probe uint64
	}

	Options struct {
		statsInterval time.Duration
	}

	// Option defines the method to customize an Options.
	Option func(o *Options)

	innerStats struct {
		mu            sync.Mutex
		statsInterval time.Duration
		stats         []*Stats
	}
)

func WithStatsInterval(statsInterval time.Duration) Option {
	return func(o *Options) {
		o.statsInterval = statsInterval
	}
}

// NewStatsLogger returns a Handler whose counters are logged and reset on
// every tick. All stats loggers share one ticker, started by the first call
// with the interval of that call.
func NewStatsLogger(name string, opts ...Option) Handler {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.statsInterval <= 0 {
		o.statsInterval = defaultStatsInterval
	}
	once.Do(func() {
		inner = &innerStats{
			statsInterval: o.statsInterval,
			stats:         make([]*Stats, 0),
		}

		go util.WithRecover(func() {
			ticker := time.NewTicker(o.statsInterval)
			defer ticker.Stop()

			inner.statLoop(ticker)
		})
	})

	stat := &Stats{
		Name:    name,
		Options: o,
	}

	inner.mu.Lock()
	inner.stats = append(inner.stats, stat)
	inner.mu.Unlock()

	return stat
}

func (s *Stats) IncrHit() {
	atomic.AddUint64(&s.Hit, 1)
}

func (s *Stats) IncrMiss() {
	atomic.AddUint64(&s.Miss, 1)
}

func (s *Stats) IncrProbe() {
	atomic.AddUint64(&s.Probe, 1)
}

func (inner *innerStats) statLoop(ticker *time.Ticker) {
	for range ticker.C {
		inner.logStatSummary()
	}
}

func (inner *innerStats) logStatSummary() {
	inner.mu.Lock()
	stats := make([]Stats, len(inner.stats))
	maxNameLen := len("chain")
	for i, s := range inner.stats {
		stats[i] = Stats{
			Name:  s.Name,
			Hit:   atomic.SwapUint64(&s.Hit, 0),
			Miss:  atomic.SwapUint64(&s.Miss, 0),
			Probe: atomic.SwapUint64(&s.Probe, 0),
		}
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}
	inner.mu.Unlock()

	maxLenStr := strconv.Itoa(maxNameLen + 2)
	rows := formatRows(stats, maxLenStr)
	if len(rows) > 0 {
		var sb strings.Builder
		header := formatHeader(maxLenStr)
		sb.WriteString(fmt.Sprintf("hashchain stats last %s.\n", inner.statsInterval))
		sb.WriteString(header)
		sb.WriteString(formatSepLine(header))
		sb.WriteString(rows)
		sb.WriteString(formatSepLine(header))
		logger.Info("%s", sb.String())
	}
}

func formatHeader(maxLenStr string) string {
	return fmt.Sprintf("%-"+maxLenStr+"s|%12s|%12s|%12s|%12s|%12s|%12s\n", "chain", "lookups", "hit_ratio", "hit", "miss", "probe", "avg_depth")
}

func formatRows(stats []Stats, maxLenStr string) string {
	var rows strings.Builder
	for _, s := range stats {
		total := s.Hit + s.Miss
		if total == 0 && s.Probe == 0 {
			continue
		}
		rows.WriteString(fmt.Sprintf("%-"+maxLenStr+"s|", s.Name))
		rows.WriteString(fmt.Sprintf("%12d|", total))
		rows.WriteString(fmt.Sprintf("%11s", rate(s.Hit, total)))
		rows.WriteString("%|")
		rows.WriteString(fmt.Sprintf("%12d|", s.Hit))
		rows.WriteString(fmt.Sprintf("%12d|", s.Miss))
		rows.WriteString(fmt.Sprintf("%12d|", s.Probe))
		rows.WriteString(fmt.Sprintf("%12s", depth(s.Probe, total)))
		rows.WriteString("\n")
	}

	return rows.String()
}

func formatSepLine(header string) string {
	var b strings.Builder
	for _, c := range strings.TrimSuffix(header, "\n") {
		if c == '|' {
			b.WriteString("+")
		} else {
			b.WriteString("-")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func rate(count, total uint64) string {
	if total == 0 {
		return "0.00"
	}

	return fmt.Sprintf("%2.2f", float64(count*100)/float64(total))
}

// depth is the average number of sources consulted per lookup.
func depth(probe, total uint64) string {
	if total == 0 {
		return "-"
	}

	return fmt.Sprintf("%.2f", float64(probe)/float64(total))
}
