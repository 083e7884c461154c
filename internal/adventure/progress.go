package adventure

import "github.com/eyeradar/lexiquest/internal/models"

// ComputeProgress derives per-game progression for one world. Games
// arrive already ordered and filtered; sessions are the student's full
// history across all games. The first game without a completed session
// becomes current, everything before it is completed, everything after
// it is locked. When every game is completed no node is current.
func ComputeProgress(games []models.GameDefinition, sessions []models.Session) []models.LevelNode {
	completed := make(map[string][]models.Session)
	attempts := make(map[string]int)
	for _, s := range sessions {
		attempts[s.GameID]++
		if s.Status == models.SessionCompleted {
			completed[s.GameID] = append(completed[s.GameID], s)
		}
	}

	nodes := make([]models.LevelNode, 0, len(games))
	currentAssigned := false
	for _, g := range games {
		node := models.LevelNode{Game: g}
		if done := completed[g.ID]; len(done) > 0 {
			node.State = models.NodeCompleted
			for _, s := range done {
				if s.Accuracy > node.BestAccuracy {
					node.BestAccuracy = s.Accuracy
				}
			}
			node.Stars = Stars(node.BestAccuracy)
			node.SessionsPlayed = attempts[g.ID]
		} else if !currentAssigned {
			node.State = models.NodeCurrent
			node.SessionsPlayed = attempts[g.ID]
			currentAssigned = true
		} else {
			// Locked levels report no attempts even if stray
			// sessions exist for them.
			node.State = models.NodeLocked
		}
		nodes = append(nodes, node)
	}
	return nodes
}
