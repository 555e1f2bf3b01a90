package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeScheduler records every Schedule/Cancel call.
type fakeScheduler struct {
	next      Handle
	live      map[Handle]fakeTimer
	scheduled []time.Duration
	cancelled []Handle
}

type fakeTimer struct {
	fn    func()
	every time.Duration
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{live: make(map[Handle]fakeTimer)}
}

func (s *fakeScheduler) Schedule(fn func(), every time.Duration) Handle {
	s.next++
	s.live[s.next] = fakeTimer{fn: fn, every: every}
	s.scheduled = append(s.scheduled, every)
	return s.next
}

func (s *fakeScheduler) Cancel(h Handle) {
	s.cancelled = append(s.cancelled, h)
	delete(s.live, h)
}

// fire invokes the only live timer once.
func (s *fakeScheduler) fire() bool {
	for _, t := range s.live {
		t.fn()
		return true
	}
	return false
}

// interval returns the interval of the single live timer.
func (s *fakeScheduler) interval() (time.Duration, bool) {
	for _, t := range s.live {
		return t.every, true
	}
	return 0, false
}

// fakeStore is an in-memory Persistence.
type fakeStore struct {
	value   int
	loadErr error
	saveErr error
	saves   []int
}

func (s *fakeStore) Load() (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.value, nil
}

func (s *fakeStore) Save(score int) error {
	s.saves = append(s.saves, score)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value = score
	return nil
}

var errDiskGone = errors.New("disk gone")

// fakeRenderer keeps every snapshot it receives.
type fakeRenderer struct {
	frames []Snapshot
}

func (r *fakeRenderer) Render(s Snapshot) {
	r.frames = append(r.frames, s)
}

// testRig bundles an engine with its fakes.
type testRig struct {
	e     *Engine
	sched *fakeScheduler
	store *fakeStore
	rend  *fakeRenderer
}

func newRig(cfg config.SnakeConfig, store *fakeStore) testRig {
	if store == nil {
		store = &fakeStore{loadErr: ErrHighScoreMissing}
	}
	r := testRig{
		sched: newFakeScheduler(),
		store: store,
		rend:  &fakeRenderer{},
	}
	r.e = New(cfg,
		WithScheduler(r.sched),
		WithPersistence(r.store),
		WithRenderer(r.rend),
		WithRand(rand.New(rand.NewSource(7))),
	)
	return r
}

func newDefaultRig() testRig {
	return newRig(config.DefaultSnakeConfig(), nil)
}

// place overwrites the snake, heading and food of a playing engine.
func (r testRig) place(snake []core.Position, dir core.Direction, food core.Position) {
	r.e.snake = append([]core.Position(nil), snake...)
	r.e.direction = dir
	r.e.pending = dir
	r.e.food = food
}

func pos(x, y int) core.Position {
	return core.Position{X: x, Y: y}
}
