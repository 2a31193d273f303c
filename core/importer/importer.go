package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"inventory-sync/core/metrics"
	"inventory-sync/core/model"
	"inventory-sync/core/schema"
	"inventory-sync/core/snapshot"

	"go.uber.org/zap"
)

// Record outcomes.
const (
	OutcomeInserted  = "inserted"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
	OutcomeSkipped   = "skipped"
)

// Failure identifies one record that could not be loaded.
type Failure struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// Outcome tallies one kind.
type Outcome struct {
	Kind      model.Kind `json:"kind"`
	Inserted  int        `json:"inserted"`
	Duplicate int        `json:"duplicate"`
	Error     int        `json:"error"`
	Skipped   int        `json:"skipped"`
	Failures  []Failure  `json:"failures,omitempty"`
}

// Processed is the number of records seen for the kind.
func (o Outcome) Processed() int {
	return o.Inserted + o.Duplicate + o.Error + o.Skipped
}

func (o *Outcome) add(outcome string) {
	switch outcome {
	case OutcomeInserted:
		o.Inserted++
	case OutcomeDuplicate:
		o.Duplicate++
	case OutcomeError:
		o.Error++
	case OutcomeSkipped:
		o.Skipped++
	}
}

// Result is the report of one import run.
type Result struct {
	Kinds []Outcome `json:"kinds"`
	// Total sums every kind; its Kind and Failures are empty.
	Total Outcome `json:"total"`
	// RefreshError is set when the aggregate refresh failed. The load itself still counts.
	RefreshError error         `json:"-"`
	Duration     time.Duration `json:"duration"`
}

// Importer loads snapshots into the store in dependency order.
type Importer struct {
	writer Writer
	mapper *schema.Mapper
	cfg    Config
	log    *zap.Logger
}

// New creates an Importer.
func New(writer Writer, mapper *schema.Mapper, cfg Config, log *zap.Logger) *Importer {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Importer{writer: writer, mapper: mapper, cfg: cfg, log: log}
}

// Run reads every snapshot up front, so a missing one aborts before any write,
// then loads the kinds in model.LoadOrder. Per-record failures are counted and
// never abort the run.
func (i *Importer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	data := make(map[model.Kind][]snapshot.Record, len(model.LoadOrder))
	for _, kind := range model.LoadOrder {
		records, err := snapshot.Read(i.cfg.SnapshotDir, kind.Sheet())
		if err != nil {
			return nil, err
		}
		data[kind] = records
		i.log.Info("Snapshot loaded", zap.String("kind", string(kind)), zap.Int("records", len(records)))
	}

	result := &Result{}
	for _, kind := range model.LoadOrder {
		outcome := i.loadKind(ctx, kind, data[kind])
		i.log.Info("Kind imported",
			zap.String("kind", string(kind)),
			zap.Int("inserted", outcome.Inserted),
			zap.Int("duplicate", outcome.Duplicate),
			zap.Int("error", outcome.Error),
			zap.Int("skipped", outcome.Skipped),
		)
		result.Kinds = append(result.Kinds, outcome)
		result.Total.Inserted += outcome.Inserted
		result.Total.Duplicate += outcome.Duplicate
		result.Total.Error += outcome.Error
		result.Total.Skipped += outcome.Skipped
	}

	if stmt := i.cfg.RefreshStatement; stmt != "" {
		if err := i.writer.RefreshAggregates(ctx, stmt); err != nil {
			i.log.Error("Aggregate refresh failed", zap.String("statement", stmt), zap.Error(err))
			result.RefreshError = err
		} else {
			i.log.Info("Aggregates refreshed", zap.String("statement", stmt))
		}
	}

	result.Duration = time.Since(start)
	metrics.ImportDuration.Observe(result.Duration.Seconds())
	return result, nil
}

type recordResult struct {
	outcome string
	key     string
	err     error
}

// loadKind fans records out to cfg.Concurrency workers. Results are folded back
// in source order so failure lists are deterministic.
func (i *Importer) loadKind(ctx context.Context, kind model.Kind, records []snapshot.Record) Outcome {
	outcome := Outcome{Kind: kind}
	if len(records) == 0 {
		return outcome
	}

	results := make([]recordResult, len(records))
	if i.cfg.Concurrency == 1 {
		for idx, rec := range records {
			results[idx] = i.loadRecord(ctx, kind, idx, rec)
		}
	} else {
		indexCh := make(chan int, len(records))
		for idx := range records {
			indexCh <- idx
		}
		close(indexCh)

		var wg sync.WaitGroup
		wg.Add(i.cfg.Concurrency)
		for w := 0; w < i.cfg.Concurrency; w++ {
			go func() {
				defer wg.Done()
				for idx := range indexCh {
					results[idx] = i.loadRecord(ctx, kind, idx, records[idx])
				}
			}()
		}
		wg.Wait()
	}

	for _, r := range results {
		outcome.add(r.outcome)
		metrics.ImportRecords.WithLabelValues(string(kind), r.outcome).Inc()
		if r.outcome == OutcomeError {
			outcome.Failures = append(outcome.Failures, Failure{Key: r.key, Error: r.err.Error()})
		}
	}
	return outcome
}

func (i *Importer) loadRecord(ctx context.Context, kind model.Kind, idx int, rec snapshot.Record) recordResult {
	entity, err := i.mapper.Map(kind, rec)
	if err != nil {
		key := i.mapper.KeyOf(kind, rec)
		if errors.Is(err, schema.ErrSkipped) {
			i.log.Warn("Record skipped", zap.String("kind", string(kind)), zap.String("key", key), zap.Error(err))
			return recordResult{outcome: OutcomeSkipped, key: key}
		}
		i.log.Error("Record rejected", zap.String("kind", string(kind)), zap.String("key", key), zap.Int("row", idx+2), zap.Error(err))
		return recordResult{outcome: OutcomeError, key: key, err: fmt.Errorf("row %d: %w", idx+2, err)}
	}

	key := entity.NaturalKey()
	if err := i.writer.Insert(ctx, entity); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			i.log.Debug("Record already exists", zap.String("kind", string(kind)), zap.String("key", key))
			return recordResult{outcome: OutcomeDuplicate, key: key}
		}
		var writeErr *StoreWriteError
		if !errors.As(err, &writeErr) {
			err = &StoreWriteError{Kind: kind, Key: key, Err: err}
		}
		i.log.Error("Record write failed", zap.String("kind", string(kind)), zap.String("key", key), zap.Error(err))
		return recordResult{outcome: OutcomeError, key: key, err: err}
	}

	i.log.Debug("Record inserted", zap.String("kind", string(kind)), zap.String("key", key))
	return recordResult{outcome: OutcomeInserted, key: key}
}
