// Package scoring connects finished snake sessions to the leaderboard.
// Submissions are written on background goroutines so the game loop never
// waits on the database.
package scoring

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Recorder persists a submission. *storage.Store implements it.
type Recorder interface {
	SubmitScore(sub storage.Submission) (storage.SubmitResult, error)
}

// Result is delivered once a submission has been written or has failed.
type Result struct {
	RunID string
	Event snake.ScoreEvent
	storage.SubmitResult
	Err error
}

// Options configures a Submitter.
type Options struct {
	Player   string
	Logger   *log.Logger
	OnResult func(Result) // Called from the writer goroutine
}

// Submitter is a fire-and-forget snake.ScoreSink backed by a Recorder.
// Zero and negative scores are dropped.
type Submitter struct {
	rec      Recorder
	player   string
	logger   *log.Logger
	onResult func(Result)

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ snake.ScoreSink = (*Submitter)(nil)

// New creates a submitter writing to rec.
func New(rec Recorder, opts Options) *Submitter {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}
	return &Submitter{
		rec:      rec,
		player:   opts.Player,
		logger:   opts.Logger,
		onResult: opts.OnResult,
	}
}

// SubmitScore records ev in the background and returns immediately.
func (s *Submitter) SubmitScore(ev snake.ScoreEvent) {
	if ev.Score <= 0 {
		s.logger.Debug("score not submitted", "score", ev.Score, "level", ev.Level)
		return
	}

	if s.rec == nil {
		s.logger.Warn("score dropped, no leaderboard", "score", ev.Score, "level", ev.Level)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.logger.Warn("score dropped, submitter closed", "score", ev.Score, "level", ev.Level)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.write(ev)
	}()
}

func (s *Submitter) write(ev snake.ScoreEvent) {
	runID := uuid.NewString()
	res, err := s.rec.SubmitScore(storage.Submission{
		RunID:  runID,
		Player: s.player,
		Score:  ev.Score,
		Level:  ev.Level,
		Mode:   ev.Mode,
	})
	if err != nil {
		s.logger.Error("score submission failed", "run", runID, "score", ev.Score, "level", ev.Level, "err", err)
	} else {
		s.logger.Info("score submitted", "run", runID, "score", ev.Score, "level", ev.Level,
			"best", res.BestScore, "new_best", res.Updated)
	}

	if s.onResult != nil {
		s.onResult(Result{RunID: runID, Event: ev, SubmitResult: res, Err: err})
	}
}

// Close stops accepting scores and waits for pending writes.
func (s *Submitter) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}
