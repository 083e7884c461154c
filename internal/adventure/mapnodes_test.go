package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/models"
)

func TestBuildMapNodes_CastleCadence(t *testing.T) {
	// 5 levels, interval 2: L1 L2 C L3 L4 C L5 C(final) = 8 nodes.
	levels := ComputeProgress(testGames("a", "b", "c", "d", "e"), nil)
	nodes := BuildMapNodes(levels, DefaultConfig())
	require.Len(t, nodes, 8)

	wantTypes := []models.NodeType{
		models.NodeLevel, models.NodeLevel, models.NodeCastle,
		models.NodeLevel, models.NodeLevel, models.NodeCastle,
		models.NodeLevel, models.NodeCastle,
	}
	for i, want := range wantTypes {
		assert.Equal(t, want, nodes[i].Type, "node %d", i)
	}
	assert.Equal(t, "World Boss", nodes[7].Label)
}

func TestBuildMapNodes_SingleGameNoSessions(t *testing.T) {
	levels := ComputeProgress(testGames("a"), nil)
	nodes := BuildMapNodes(levels, DefaultConfig())
	require.Len(t, nodes, 2)

	assert.Equal(t, models.NodeLevel, nodes[0].Type)
	assert.Equal(t, models.NodeCurrent, nodes[0].State)
	assert.Equal(t, models.NodeCastle, nodes[1].Type)
	assert.Equal(t, models.NodeLocked, nodes[1].State)
}

func TestBuildMapNodes_CheckpointAfterCompletedBlock(t *testing.T) {
	levels := ComputeProgress(testGames("a", "b", "c"), []models.Session{
		completedSession("a", 90),
		completedSession("b", 90),
	})
	nodes := BuildMapNodes(levels, DefaultConfig())
	require.Len(t, nodes, 5)

	// Block before the checkpoint is done and the current level comes
	// after it, so the checkpoint itself claims current.
	assert.Equal(t, models.NodeCompleted, nodes[0].State)
	assert.Equal(t, models.NodeCompleted, nodes[1].State)
	assert.Equal(t, models.NodeCastle, nodes[2].Type)
	assert.Equal(t, models.NodeCurrent, nodes[2].State)
	assert.Equal(t, models.NodeLocked, nodes[3].State)
	assert.Equal(t, models.NodeLocked, nodes[4].State)
}

func TestBuildMapNodes_IncompleteBlockLocksCheckpoint(t *testing.T) {
	levels := ComputeProgress(testGames("a", "b", "c"), []models.Session{
		completedSession("a", 90),
	})
	nodes := BuildMapNodes(levels, DefaultConfig())
	require.Len(t, nodes, 5)

	assert.Equal(t, models.NodeCurrent, nodes[1].State)
	assert.Equal(t, models.NodeLocked, nodes[2].State)
}

func TestBuildMapNodes_AllCompletedBossIsCurrent(t *testing.T) {
	levels := ComputeProgress(testGames("a", "b"), []models.Session{
		completedSession("a", 90),
		completedSession("b", 70),
	})
	nodes := BuildMapNodes(levels, DefaultConfig())
	require.Len(t, nodes, 3)

	assert.Equal(t, models.NodeCompleted, nodes[0].State)
	assert.Equal(t, models.NodeCompleted, nodes[1].State)
	assert.Equal(t, models.NodeCurrent, nodes[2].State)
}

func TestBuildMapNodes_LockFrontier(t *testing.T) {
	games := testGames("a", "b", "c", "d", "e", "f", "g")
	cases := [][]models.Session{
		nil,
		{completedSession("a", 90)},
		{completedSession("a", 90), completedSession("b", 90), completedSession("c", 90)},
		{completedSession("a", 90), completedSession("b", 90), completedSession("c", 90),
			completedSession("d", 90), completedSession("e", 90), completedSession("f", 90),
			completedSession("g", 90)},
	}

	for ci, sessions := range cases {
		nodes := BuildMapNodes(ComputeProgress(games, sessions), DefaultConfig())

		currents := 0
		cur := -1
		for i, n := range nodes {
			if n.State == models.NodeCurrent {
				currents++
				cur = i
			}
		}
		require.Equal(t, 1, currents, "case %d", ci)

		for i := cur + 1; i < len(nodes); i++ {
			assert.NotEqual(t, models.NodeCurrent, nodes[i].State, "case %d node %d", ci, i)
		}
	}
}

func TestBuildMapNodes_LevelNumbersAndPositions(t *testing.T) {
	cfg := DefaultConfig()
	levels := ComputeProgress(testGames("a", "b", "c", "d"), nil)
	nodes := BuildMapNodes(levels, cfg)

	levelNum := 0
	for _, n := range nodes {
		assert.GreaterOrEqual(t, n.Position.X, 0.0)
		assert.LessOrEqual(t, n.Position.X, cfg.Width)
		assert.GreaterOrEqual(t, n.Position.Y, 0.0)
		assert.LessOrEqual(t, n.Position.Y, cfg.Height)

		if n.Type == models.NodeLevel {
			levelNum++
			assert.Equal(t, levelNum, n.LevelNumber)
			require.NotNil(t, n.Game)
		} else {
			assert.Nil(t, n.Game)
		}
	}
}

func TestBuildMapNodes_PromotesFirstLockedWhenNoCurrent(t *testing.T) {
	// Levels arriving fully locked, as from a stale or hand-built
	// progression, still have to leave the student somewhere to play.
	games := testGames("a", "b")
	levels := []models.LevelNode{
		{Game: games[0], State: models.NodeLocked},
		{Game: games[1], State: models.NodeLocked},
	}
	nodes := BuildMapNodes(levels, DefaultConfig())
	require.Len(t, nodes, 3)

	assert.Equal(t, models.NodeCurrent, nodes[0].State)
	assert.Equal(t, models.NodeLocked, nodes[1].State)
	assert.Equal(t, models.NodeLocked, nodes[2].State)
}

func TestBuildMapNodes_EmptyLevels(t *testing.T) {
	assert.Empty(t, BuildMapNodes(nil, DefaultConfig()))
}

func TestCurrentIndex(t *testing.T) {
	levels := ComputeProgress(testGames("a", "b"), []models.Session{completedSession("a", 90)})
	nodes := BuildMapNodes(levels, DefaultConfig())
	idx := CurrentIndex(nodes)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, models.NodeCurrent, nodes[idx].State)

	assert.Equal(t, -1, CurrentIndex(nil))
}
