package pipeline

import (
	"context"

	"go.uber.org/zap"

	"marketboard/internal/classifier"
	"marketboard/internal/client/gamma"
	"marketboard/internal/config"
	"marketboard/internal/models"
)

// EventsFetcher is the upstream dependency of the pipeline. *gamma.Client
// satisfies it; tests substitute stubs.
type EventsFetcher interface {
	FetchEvents(ctx context.Context, opts gamma.FetchOptions) ([]models.RawEvent, error)
}

// Pipeline turns one raw upstream listing into the ranked public market
// array. Each Run is independent and stateless: it builds fresh local
// collections, so concurrent invocations share nothing.
type Pipeline struct {
	Fetcher EventsFetcher
	Table   *classifier.Table
	Config  config.PipelineConfig
	Logger  *zap.Logger
}

// Run executes the full fetch/normalize/filter/rank/assemble sequence.
// A failed fetch fails the whole run; a record that fails normalization or
// filtering is dropped silently and never aborts the batch.
func (p *Pipeline) Run(ctx context.Context) ([]models.MarketView, error) {
	events, err := p.Fetcher.FetchEvents(ctx, gamma.FetchOptions{
		Limit:  p.Config.FetchLimit,
		Active: p.Config.Active,
		Closed: p.Config.Closed,
		Order:  p.Config.Order,
	})
	if err != nil {
		return nil, err
	}

	views := make([]models.MarketView, 0, len(events))
	for _, ev := range events {
		canon, ok := p.normalizeEvent(ev)
		if !ok {
			continue
		}
		if outsideProbabilityBounds(canon, p.Config.MinProbability, p.Config.MaxProbability) {
			continue
		}
		if blacklisted(canon, p.Config.Blacklist) {
			continue
		}
		views = append(views, p.assemble(canon))
	}

	rank(views)
	if p.Config.ResultLimit > 0 && len(views) > p.Config.ResultLimit {
		views = views[:p.Config.ResultLimit]
	}

	if p.Logger != nil {
		p.Logger.Debug("pipeline run complete",
			zap.Int("fetched", len(events)),
			zap.Int("returned", len(views)),
		)
	}
	return views, nil
}
