package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"transcript-scorer/internal/db"
	"transcript-scorer/internal/logx"
	"transcript-scorer/internal/metrics"
	"transcript-scorer/internal/suite"
	"transcript-scorer/wer"
)

// Store is the subset of the database the evaluator writes through.
type Store interface {
	InsertRun(r *db.Run) error
	InsertPairResults(runID string, pairs []db.PairRow) error
	FinishRun(id string, pairs, totalEdits, totalRefWords int, overallWER float64, weightedWER *float64) error
	FailRun(id string, errMsg string) error
	StopRun(id string, pairs, totalEdits, totalRefWords int, overallWER float64) error
}

type Status struct {
	Running   bool    `json:"running"`
	RunID     string  `json:"run_id,omitempty"`
	Suite     string  `json:"suite,omitempty"`
	Total     int64   `json:"total"`
	Processed int64   `json:"processed"`
	Percent   float64 `json:"percent"`
	Rate      float64 `json:"rate"`
	CorpusWER float64 `json:"corpus_wer"`
	Elapsed   string  `json:"elapsed"`
	LastError string  `json:"last_error,omitempty"`
}

// Evaluator scores suite pairs across a worker pool. One run at a
// time; per-pair results keep their input order via their index.
type Evaluator struct {
	store          Store
	defaultWorkers int
	running        int32
	stopFlag       int32
	processed      int64
	total          int64
	totalEdits     int64
	totalRefWords  int64
	weightedEdits  float64
	runID          string
	suiteName      string
	startTime      time.Time
	lastError      string
	mu             sync.Mutex
}

func NewEvaluator(store Store, defaultWorkers int) *Evaluator {
	return &Evaluator{
		store:          store,
		defaultWorkers: defaultWorkers,
	}
}

// Start launches an asynchronous run over the suite and returns its id.
func (e *Evaluator) Start(s *suite.Suite, workers int) (string, error) {
	if !atomic.CompareAndSwapInt32(&e.running, 0, 1) {
		return "", errors.New("evaluation already running")
	}

	if workers <= 0 {
		workers = e.defaultWorkers
	}

	runID := uuid.NewString()

	atomic.StoreInt64(&e.processed, 0)
	atomic.StoreInt64(&e.total, int64(len(s.Pairs)))
	atomic.StoreInt64(&e.totalEdits, 0)
	atomic.StoreInt64(&e.totalRefWords, 0)
	atomic.StoreInt32(&e.stopFlag, 0)

	e.mu.Lock()
	e.weightedEdits = 0
	e.runID = runID
	e.suiteName = s.Name
	e.lastError = ""
	e.startTime = time.Now()
	e.mu.Unlock()

	run := &db.Run{ID: runID, Suite: s.Name, Source: "suite", Pairs: len(s.Pairs)}
	if err := e.store.InsertRun(run); err != nil {
		atomic.StoreInt32(&e.running, 0)
		return "", err
	}

	go e.run(s, runID, workers)
	return runID, nil
}

func (e *Evaluator) Stop() {
	atomic.StoreInt32(&e.stopFlag, 1)
}

func (e *Evaluator) setLastError(err string) {
	e.mu.Lock()
	e.lastError = err
	e.mu.Unlock()
}

func (e *Evaluator) addWeighted(edits float64) {
	e.mu.Lock()
	e.weightedEdits += edits
	e.mu.Unlock()
}

func (e *Evaluator) Status() Status {
	p := atomic.LoadInt64(&e.processed)
	t := atomic.LoadInt64(&e.total)
	edits := atomic.LoadInt64(&e.totalEdits)
	words := atomic.LoadInt64(&e.totalRefWords)

	e.mu.Lock()
	runID := e.runID
	suiteName := e.suiteName
	lastErr := e.lastError
	started := e.startTime
	e.mu.Unlock()

	var pct, rate float64
	var elapsed time.Duration
	if !started.IsZero() {
		elapsed = time.Since(started)
	}

	if t > 0 {
		pct = float64(p) / float64(t) * 100
	}
	if elapsed.Seconds() > 0 {
		rate = float64(p) / elapsed.Seconds()
	}

	denom := words
	if denom < 1 {
		denom = 1
	}

	return Status{
		Running:   atomic.LoadInt32(&e.running) == 1,
		RunID:     runID,
		Suite:     suiteName,
		Total:     t,
		Processed: p,
		Percent:   pct,
		Rate:      rate,
		CorpusWER: float64(edits) / float64(denom),
		Elapsed:   elapsed.Round(time.Second).String(),
		LastError: lastErr,
	}
}

func (e *Evaluator) run(s *suite.Suite, runID string, workers int) {
	defer atomic.StoreInt32(&e.running, 0)

	logx.Log.Info().Str("suite", s.Name).Str("run_id", runID).
		Int("pairs", len(s.Pairs)).Int("workers", workers).
		Msg("evaluation started")

	results := make([]db.PairRow, len(s.Pairs))
	scored := make([]bool, len(s.Pairs))

	taskChan := make(chan int, 100)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go e.worker(&wg, s, taskChan, results, scored)
	}

	for idx := range s.Pairs {
		if atomic.LoadInt32(&e.stopFlag) == 1 {
			break
		}
		taskChan <- idx
	}
	close(taskChan)

	wg.Wait()

	rows := make([]db.PairRow, 0, len(results))
	for i, ok := range scored {
		if ok {
			rows = append(rows, results[i])
		}
	}

	if err := e.store.InsertPairResults(runID, rows); err != nil {
		e.setLastError("insert pairs: " + err.Error())
		metrics.EvalErrors.WithLabelValues("db").Inc()
		logx.Log.Error().Err(err).Str("run_id", runID).Msg("persist pair results")
		e.store.FailRun(runID, err.Error())
		return
	}

	edits := atomic.LoadInt64(&e.totalEdits)
	words := atomic.LoadInt64(&e.totalRefWords)
	denom := words
	if denom < 1 {
		denom = 1
	}
	overall := float64(edits) / float64(denom)

	if atomic.LoadInt32(&e.stopFlag) == 1 {
		if err := e.store.StopRun(runID, len(rows), int(edits), int(words), overall); err != nil {
			e.setLastError("stop run: " + err.Error())
			metrics.EvalErrors.WithLabelValues("db").Inc()
			logx.Log.Error().Err(err).Str("run_id", runID).Msg("mark run stopped")
			return
		}
		logx.Log.Warn().Str("run_id", runID).Int("scored", len(rows)).
			Msg("evaluation stopped before completion")
		return
	}

	var weightedWER *float64
	if s.Weights != nil {
		e.mu.Lock()
		w := e.weightedEdits / float64(denom)
		e.mu.Unlock()
		weightedWER = &w
	}

	if err := e.store.FinishRun(runID, len(rows), int(edits), int(words), overall, weightedWER); err != nil {
		e.setLastError("finish run: " + err.Error())
		metrics.EvalErrors.WithLabelValues("db").Inc()
		logx.Log.Error().Err(err).Str("run_id", runID).Msg("finish run")
		return
	}

	elapsed := time.Since(e.startTimeSnapshot())

	metrics.EvaluationsTotal.Inc()
	metrics.WERLast.Set(overall)
	metrics.RunDuration.Observe(elapsed.Seconds())

	logx.Log.Info().Str("run_id", runID).Int("pairs", len(rows)).
		Float64("wer", overall).Str("elapsed", elapsed.Round(time.Millisecond).String()).
		Msg("evaluation complete")
}

func (e *Evaluator) startTimeSnapshot() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startTime
}

func (e *Evaluator) worker(wg *sync.WaitGroup, s *suite.Suite, tasks <-chan int, results []db.PairRow, scored []bool) {
	defer wg.Done()

	for idx := range tasks {
		if atomic.LoadInt32(&e.stopFlag) == 1 {
			return
		}

		p := s.Pairs[idx]
		ref := wer.Tokenize(p.Reference)
		hyp := wer.Tokenize(p.Hypothesis)
		res := wer.Score(ref, hyp)

		results[idx] = db.PairRow{
			Idx:           idx,
			Reference:     p.Reference,
			Hypothesis:    p.Hypothesis,
			WER:           res.WER,
			Edits:         res.Edits,
			RefWords:      res.RefWords,
			Substitutions: res.Substitutions,
			Insertions:    res.Insertions,
			Deletions:     res.Deletions,
		}
		scored[idx] = true

		if s.Weights != nil {
			e.addWeighted(wer.WeightedDistance(ref, hyp, *s.Weights))
		}

		atomic.AddInt64(&e.processed, 1)
		atomic.AddInt64(&e.totalEdits, int64(res.Edits))
		atomic.AddInt64(&e.totalRefWords, int64(res.RefWords))
		metrics.PairsScored.Inc()
		metrics.WERDistribution.Observe(res.WER)
	}
}
