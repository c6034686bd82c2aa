package chessfeed

import (
	"context"

	"go.uber.org/zap"
)

const (
	defaultPerSourceCap = 5
	defaultTotalCap     = 10
)

// Source is one upstream platform contributing games for a fixed username.
type Source interface {
	Name() string
	Recent(ctx context.Context, username string, maxGames int) ([]GameRecord, error)
}

// SourceConfig binds a source to the username queried on that platform.
type SourceConfig struct {
	Source   Source
	Username string
}

// Aggregator merges the sources into one list, newest first. Sources run
// independently: a failing source is logged and contributes nothing, the
// others are unaffected. The aggregator itself has no failure mode, only
// degraded output.
type Aggregator struct {
	sources   []SourceConfig
	perSource int
	total     int
	logger    *zap.Logger
}

func NewAggregator(sources []SourceConfig, perSource, total int, logger *zap.Logger) *Aggregator {
	if perSource <= 0 {
		perSource = defaultPerSourceCap
	}
	if total <= 0 {
		total = defaultTotalCap
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		sources:   append([]SourceConfig(nil), sources...),
		perSource: perSource,
		total:     total,
		logger:    logger,
	}
}

// RecentGames never returns an error; the worst case is an empty list.
func (a *Aggregator) RecentGames(ctx context.Context) []GameRecord {
	var merged []GameRecord
	for _, sc := range a.sources {
		games, err := sc.Source.Recent(ctx, sc.Username, a.perSource)
		if err != nil {
			a.logger.Warn("chess source unavailable",
				zap.String("source", sc.Source.Name()),
				zap.String("username", sc.Username),
				zap.Error(err),
			)
			continue
		}
		merged = append(merged, games...)
	}

	sortByDateDesc(merged)
	if len(merged) > a.total {
		merged = merged[:a.total]
	}
	return merged
}
