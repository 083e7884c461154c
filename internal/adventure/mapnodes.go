package adventure

import (
	"fmt"

	"github.com/eyeradar/lexiquest/internal/models"
)

// Config holds the map canvas dimensions and the checkpoint cadence.
// These are deployment constants, not per-call knobs.
type Config struct {
	Width              float64
	Height             float64
	CheckpointInterval int
}

// DefaultConfig matches the canvas the web client renders into.
func DefaultConfig() Config {
	return Config{Width: 1200, Height: 750, CheckpointInterval: 2}
}

// BuildMapNodes interleaves castle checkpoints into a level sequence
// and assigns canvas positions. A checkpoint follows every
// CheckpointInterval levels when more levels remain, and one final
// castle closes the world. After construction a repair pass locks
// everything past the progression frontier, and if nothing ended up
// current the first locked node is promoted.
func BuildMapNodes(levels []models.LevelNode, cfg Config) []models.MapNode {
	if cfg.CheckpointInterval < 1 {
		cfg.CheckpointInterval = 2
	}
	if len(levels) == 0 {
		return nil
	}

	var nodes []models.MapNode
	anyCurrent := false
	castleCount := 0

	appendCastle := func(label string, blockCompleted bool) {
		castleCount++
		state := models.NodeLocked
		if blockCompleted {
			if anyCurrent {
				state = models.NodeCompleted
			} else {
				state = models.NodeCurrent
				anyCurrent = true
			}
		}
		nodes = append(nodes, models.MapNode{
			ID:    fmt.Sprintf("castle-%d", castleCount),
			Type:  models.NodeCastle,
			Label: label,
			State: state,
		})
	}

	sinceCheckpoint := 0
	allCompleted := true
	for i, lv := range levels {
		game := lv.Game
		if lv.State == models.NodeCurrent {
			anyCurrent = true
		}
		if lv.State != models.NodeCompleted {
			allCompleted = false
		}
		nodes = append(nodes, models.MapNode{
			ID:           game.ID,
			Type:         models.NodeLevel,
			Label:        game.Name,
			LevelNumber:  i + 1,
			State:        lv.State,
			Stars:        lv.Stars,
			BestAccuracy: lv.BestAccuracy,
			Game:         &game,
		})
		sinceCheckpoint++

		if sinceCheckpoint == cfg.CheckpointInterval && i < len(levels)-1 {
			blockDone := true
			for _, n := range nodes[len(nodes)-cfg.CheckpointInterval:] {
				if n.State != models.NodeCompleted {
					blockDone = false
					break
				}
			}
			appendCastle("Castle Checkpoint", blockDone)
			sinceCheckpoint = 0
		}
	}

	appendCastle("World Boss", allCompleted)

	positions := Layout(len(nodes), cfg.Width, cfg.Height)
	for i := range nodes {
		nodes[i].Position = positions[i]
	}

	// Lock everything past the frontier: once a current or locked node
	// appears, later nodes may only be completed or locked.
	frontierSeen := false
	for i := range nodes {
		if frontierSeen && nodes[i].State == models.NodeCurrent {
			nodes[i].State = models.NodeLocked
		}
		if nodes[i].State == models.NodeCurrent || nodes[i].State == models.NodeLocked {
			frontierSeen = true
		}
	}

	hasCurrent := false
	for i := range nodes {
		if nodes[i].State == models.NodeCurrent {
			hasCurrent = true
			break
		}
	}
	if !hasCurrent {
		for i := range nodes {
			if nodes[i].State == models.NodeLocked {
				nodes[i].State = models.NodeCurrent
				break
			}
		}
	}

	return nodes
}

// CurrentIndex returns the index of the current node, or -1 when every
// node is completed.
func CurrentIndex(nodes []models.MapNode) int {
	for i := range nodes {
		if nodes[i].State == models.NodeCurrent {
			return i
		}
	}
	return -1
}
