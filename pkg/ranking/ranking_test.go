package ranking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const contestYAML = `
name: semi
states:
  - {id: 1, name: Alpha}
  - {id: 2, name: Bravo}
  - {id: 3, name: Charlie}
votes:
  - {from: 1, to: 2, count: 5}
  - {from: 1, to: 3, count: 7}
  - {from: 2, to: 1, count: 3}
  - {from: 2, to: 3, count: 4}
  - {from: 3, to: 1, count: 1}
  - {from: 3, to: 2, count: 4}
`

func testScorer(t *testing.T, cfg Config) *Scorer {
	return NewScorer(cfg, zaptest.NewLogger(t))
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(contestYAML))
	require.NoError(t, err)
	assert.Equal(t, "semi", c.Name)
	assert.Len(t, c.States, 3)
	assert.Equal(t, Vote{From: 2, To: 3, Count: 4}, c.Votes[3])

	_, err = Parse([]byte("states: [oops"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contestYAML), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Votes, 6)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_CheckConfig(t *testing.T) {
	var cfg Config
	cfg.CheckConfig()
	assert.Equal(t, DefaultTopN, cfg.TopN)
	assert.Equal(t, DefaultPoints, cfg.Points)

	cfg = Config{TopN: 5, Points: []int{3, 2, 1}}
	cfg.CheckConfig()
	assert.Equal(t, 3, cfg.TopN)
}

func TestScorer_Tally(t *testing.T) {
	c, err := Parse([]byte(contestYAML + "  - {from: 1, to: 2, count: 2}\n"))
	require.NoError(t, err)
	tallies, err := testScorer(t, Config{}).Tally(c)
	require.NoError(t, err)
	defer tallies.Destroy()

	assert.Equal(t, 3, tallies.Size())
	t1, ok := tallies.Get(1)
	require.True(t, ok)
	assert.Equal(t, "map[2:7 3:7]", t1.String())
}

func TestScorer_Score(t *testing.T) {
	c, err := Parse([]byte(contestYAML))
	require.NoError(t, err)
	got, err := testScorer(t, Config{TopN: 2, Points: []int{12, 10}}).Score(c)
	require.NoError(t, err)

	want := []Standing{
		{Place: 1, ID: 3, Name: "Charlie", Points: 24},
		{Place: 2, ID: 2, Name: "Bravo", Points: 22},
		{Place: 3, ID: 1, Name: "Alpha", Points: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("standings mismatch (-want +got):\n%s", diff)
	}
}

func TestScorer_ScoreDefaultPoints(t *testing.T) {
	c := &Contest{
		States: []State{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}},
		Votes: []Vote{
			{From: 1, To: 4, Count: 9},
			{From: 1, To: 2, Count: 9},
			{From: 1, To: 3, Count: 0},
			{From: 2, To: 3, Count: 1},
		},
	}
	got, err := testScorer(t, Config{}).Score(c)
	require.NoError(t, err)
	require.Len(t, got, 4)
	// voter 1 ties 2 and 4 and breaks the tie by id; zero counts earn nothing
	assert.Equal(t, Standing{Place: 1, ID: 2, Name: "B", Points: 12}, got[0])
	assert.Equal(t, Standing{Place: 2, ID: 3, Name: "C", Points: 12}, got[1])
	assert.Equal(t, Standing{Place: 3, ID: 4, Name: "D", Points: 10}, got[2])
	assert.Equal(t, Standing{Place: 4, ID: 1, Name: "A", Points: 0}, got[3])
}

func TestScorer_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		contest Contest
		want    error
	}{
		{"duplicate", Contest{States: []State{{1, "A"}, {1, "B"}}}, ErrDuplicateState},
		{"unknown voter", Contest{
			States: []State{{1, "A"}},
			Votes:  []Vote{{From: 2, To: 1, Count: 1}},
		}, ErrUnknownState},
		{"unknown target", Contest{
			States: []State{{1, "A"}},
			Votes:  []Vote{{From: 1, To: 2, Count: 1}},
		}, ErrUnknownState},
		{"self", Contest{
			States: []State{{1, "A"}, {2, "B"}},
			Votes:  []Vote{{From: 1, To: 1, Count: 1}},
		}, ErrSelfVote},
		{"negative", Contest{
			States: []State{{1, "A"}, {2, "B"}},
			Votes:  []Vote{{From: 1, To: 2, Count: -1}},
		}, ErrNegativeCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testScorer(t, Config{}).Score(&tt.contest)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
