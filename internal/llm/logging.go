package llm

import (
	"context"
	"iter"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that records every LLM call with
// structured fields: purpose, latency, token usage and estimated cost.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Duration("latency", time.Since(start)),
	}

	if resp != nil {
		fields = append(fields,
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
		if cost := LookupCost(resp.Model); cost != nil {
			fields = append(fields, zap.Float64("cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.log.Warn("llm request failed", fields...)
		return nil, err
	}

	l.log.Info("llm request", fields...)
	return resp, nil
}

// GenerateStream logs once when the stream ends, reporting the number of
// fragments delivered and whether the stream was interrupted.
func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) iter.Seq2[string, error] {
	inner := l.inner.GenerateStream(ctx, req)

	return func(yield func(string, error) bool) {
		start := time.Now()
		fragments := 0
		var streamErr error

		for frag, err := range inner {
			if err != nil {
				streamErr = err
				yield("", err)
				break
			}
			fragments++
			if !yield(frag, nil) {
				break
			}
		}

		fields := []zap.Field{
			zap.String("purpose", PurposeFrom(ctx)),
			zap.String("model", l.inner.ModelID()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("fragments", fragments),
		}
		if streamErr != nil {
			fields = append(fields, zap.Error(streamErr))
			l.log.Warn("llm stream failed", fields...)
			return
		}
		l.log.Info("llm stream", fields...)
	}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
