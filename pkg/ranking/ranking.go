// Package ranking scores a voting contest. Every state tallies the votes
// its audience cast for the other states, awards a fixed table of points
// to the most voted ones, and the states are ranked by the points they
// collected.
package ranking

import (
	"github.com/pkg/errors"
	"github.com/scottcagno/collections/pkg/generic/omap"
	"go.uber.org/zap"
)

var (
	ErrUnknownState   = errors.New("ranking: unknown state")
	ErrDuplicateState = errors.New("ranking: duplicate state")
	ErrSelfVote       = errors.New("ranking: state voted for itself")
	ErrNegativeCount  = errors.New("ranking: negative vote count")
)

// tally maps a target state id to the votes it received from one voter.
type tally = omap.Map[int, int]

// Standing is a state's final position.
type Standing struct {
	Place  int
	ID     int
	Name   string
	Points int
}

// Scorer turns contests into standings.
type Scorer struct {
	cfg Config
	log *zap.Logger
}

// NewScorer returns a Scorer using cfg, with defaults filled in.
func NewScorer(cfg Config, log *zap.Logger) *Scorer {
	cfg.CheckConfig()
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{cfg: cfg, log: log}
}

func tallyFuncs() omap.Funcs[int, *tally] {
	return omap.Funcs[int, *tally]{
		CopyKey:     func(k int) (int, error) { return k, nil },
		CopyValue:   func(t *tally) (*tally, error) { return t.Copy() },
		FreeKey:     func(int) {},
		FreeValue:   func(t *tally) { t.Destroy() },
		CompareKeys: func(a, b int) int { return a - b },
	}
}

// states indexes the contest's states by id.
func states(c *Contest) (*omap.Map[int, string], error) {
	names := omap.NewOrdered[int, string]()
	for _, st := range c.States {
		if names.Contains(st.ID) {
			return nil, errors.Wrapf(ErrDuplicateState, "id %d", st.ID)
		}
		if err := names.Put(st.ID, st.Name); err != nil {
			return nil, errors.Wrapf(err, "state %d", st.ID)
		}
	}
	return names, nil
}

// Tally counts the votes of every voter. The result maps a voter's id to
// its tally, which maps each other state's id to the votes it received.
// Every state has a tally, possibly empty.
func (s *Scorer) Tally(c *Contest) (*omap.Map[int, *tally], error) {
	names, err := states(c)
	if err != nil {
		return nil, err
	}
	defer names.Destroy()

	tallies, err := omap.New(tallyFuncs(), omap.WithLogger(s.log), omap.WithName("tallies"))
	if err != nil {
		return nil, err
	}
	for id := range names.Keys() {
		empty := omap.NewOrdered[int, int](omap.WithLogger(s.log))
		err = tallies.Put(id, empty)
		empty.Destroy()
		if err != nil {
			tallies.Destroy()
			return nil, errors.Wrapf(err, "tally for state %d", id)
		}
	}
	for _, v := range c.Votes {
		if err := validate(names, v); err != nil {
			tallies.Destroy()
			return nil, err
		}
		t, _ := tallies.Get(v.From)
		n, _ := t.Get(v.To)
		if err := t.Put(v.To, n+v.Count); err != nil {
			tallies.Destroy()
			return nil, errors.Wrapf(err, "vote %d -> %d", v.From, v.To)
		}
	}
	return tallies, nil
}

func validate(names *omap.Map[int, string], v Vote) error {
	switch {
	case !names.Contains(v.From):
		return errors.Wrapf(ErrUnknownState, "voter %d", v.From)
	case !names.Contains(v.To):
		return errors.Wrapf(ErrUnknownState, "vote from %d for %d", v.From, v.To)
	case v.From == v.To:
		return errors.Wrapf(ErrSelfVote, "state %d", v.From)
	case v.Count < 0:
		return errors.Wrapf(ErrNegativeCount, "vote %d -> %d: %d", v.From, v.To, v.Count)
	}
	return nil
}

// award adds the points one voter gives away to totals. The voter's
// tally is left in key order.
func (s *Scorer) award(voter int, t *tally, totals *omap.Map[int, int]) error {
	ranked, err := t.Copy()
	if err != nil {
		return errors.Wrapf(err, "rank voter %d", voter)
	}
	defer ranked.Destroy()
	omap.SortByNumericValue(ranked)

	place := 0
	for to, n := range ranked.All() {
		if place >= s.cfg.TopN || n == 0 {
			break
		}
		cur, _ := totals.Get(to)
		if err := totals.Put(to, cur+s.cfg.Points[place]); err != nil {
			return errors.Wrapf(err, "award voter %d -> %d", voter, to)
		}
		place++
	}
	s.log.Debug("voter awarded points", zap.Int("voter", voter), zap.Int("recipients", place))
	return nil
}

// Score tallies the contest, awards points and returns the standings
// from first place to last. States with equal points are ordered by id.
func (s *Scorer) Score(c *Contest) ([]Standing, error) {
	tallies, err := s.Tally(c)
	if err != nil {
		return nil, err
	}
	defer tallies.Destroy()

	totals := omap.NewOrdered[int, int](omap.WithLogger(s.log), omap.WithName("totals"))
	defer totals.Destroy()
	for id := range tallies.Keys() {
		if err := totals.Put(id, 0); err != nil {
			return nil, err
		}
	}
	for voter, t := range tallies.All() {
		if err := s.award(voter, t, totals); err != nil {
			return nil, err
		}
	}
	omap.SortByNumericValue(totals)

	names := make(map[int]string, len(c.States))
	for _, st := range c.States {
		names[st.ID] = st.Name
	}
	standings := make([]Standing, 0, totals.Size())
	for id, pts := range totals.All() {
		standings = append(standings, Standing{
			Place:  len(standings) + 1,
			ID:     id,
			Name:   names[id],
			Points: pts,
		})
	}
	s.log.Info("contest scored", zap.String("contest", c.Name),
		zap.Int("states", len(standings)), zap.Int("votes", len(c.Votes)))
	return standings, nil
}
