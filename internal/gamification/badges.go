package gamification

import "github.com/eyeradar/lexiquest/internal/models"

// The 21 badges, grouped as progress, mastery, consistency, special.
// Order here is the display order.
var badgeDefinitions = []models.Badge{
	{ID: "first_steps", Name: "First Steps", Description: "Complete your first exercise session", Icon: "👶", Category: "progress", Requirement: "Complete 1 session"},
	{ID: "getting_started", Name: "Getting Started", Description: "Complete 5 exercise sessions", Icon: "🚶", Category: "progress", Requirement: "Complete 5 sessions"},
	{ID: "dedicated_learner", Name: "Dedicated Learner", Description: "Complete 25 exercise sessions", Icon: "📚", Category: "progress", Requirement: "Complete 25 sessions"},
	{ID: "champion", Name: "Champion", Description: "Complete 100 exercise sessions", Icon: "🏆", Category: "progress", Requirement: "Complete 100 sessions"},

	{ID: "sound_master", Name: "Sound Master", Description: "Achieve 90% accuracy in Phonological Awareness exercises", Icon: "🔊", Category: "mastery", Requirement: "90% accuracy in phonological_awareness (5+ sessions)"},
	{ID: "speed_demon", Name: "Speed Demon", Description: "Achieve 90% accuracy in Rapid Naming exercises", Icon: "⚡", Category: "mastery", Requirement: "90% accuracy in rapid_naming (5+ sessions)"},
	{ID: "memory_champion", Name: "Memory Champion", Description: "Achieve 90% accuracy in Working Memory exercises", Icon: "🧠", Category: "mastery", Requirement: "90% accuracy in working_memory (5+ sessions)"},
	{ID: "eagle_eye", Name: "Eagle Eye", Description: "Achieve 90% accuracy in Visual Processing exercises", Icon: "🦅", Category: "mastery", Requirement: "90% accuracy in visual_processing (5+ sessions)"},
	{ID: "fluent_reader", Name: "Fluent Reader", Description: "Achieve 90% accuracy in Reading Fluency exercises", Icon: "📖", Category: "mastery", Requirement: "90% accuracy in reading_fluency (5+ sessions)"},
	{ID: "comprehension_king", Name: "Comprehension King", Description: "Achieve 90% accuracy in Reading Comprehension exercises", Icon: "👑", Category: "mastery", Requirement: "90% accuracy in comprehension (5+ sessions)"},

	{ID: "three_day_streak", Name: "3-Day Streak", Description: "Practice for 3 days in a row", Icon: "🔥", Category: "consistency", Requirement: "3-day streak"},
	{ID: "week_warrior", Name: "Week Warrior", Description: "Practice for 7 days in a row", Icon: "⚔️", Category: "consistency", Requirement: "7-day streak"},
	{ID: "two_week_champion", Name: "Two Week Champion", Description: "Practice for 14 days in a row", Icon: "🛡️", Category: "consistency", Requirement: "14-day streak"},
	{ID: "month_master", Name: "Month Master", Description: "Practice for 30 days in a row", Icon: "🌟", Category: "consistency", Requirement: "30-day streak"},

	{ID: "perfect_score", Name: "Perfect Score", Description: "Get 100% accuracy in any exercise session", Icon: "💯", Category: "special", Requirement: "100% accuracy in any session"},
	{ID: "level_up", Name: "Level Up", Description: "Reach level 5", Icon: "⬆️", Category: "special", Requirement: "Reach level 5"},
	{ID: "level_up_10", Name: "Double Digits", Description: "Reach level 10", Icon: "🔟", Category: "special", Requirement: "Reach level 10"},
	{ID: "all_rounder", Name: "All-Rounder", Description: "Complete at least one session in every deficit area", Icon: "🎯", Category: "special", Requirement: "Play all 6 deficit areas"},
	{ID: "point_collector", Name: "Point Collector", Description: "Earn 500 total points", Icon: "💰", Category: "special", Requirement: "Earn 500 points"},
	{ID: "point_master", Name: "Point Master", Description: "Earn 5000 total points", Icon: "💎", Category: "special", Requirement: "Earn 5000 points"},
	{ID: "speed_learner", Name: "Speed Learner", Description: "Complete 5 sessions in one day", Icon: "🚀", Category: "special", Requirement: "5 sessions in one day"},
}

// AllBadges returns the full badge list with earned flags set from the
// student's earned ids.
func AllBadges(earned []string) []models.Badge {
	earnedSet := make(map[string]bool, len(earned))
	for _, id := range earned {
		earnedSet[id] = true
	}
	out := make([]models.Badge, len(badgeDefinitions))
	for i, b := range badgeDefinitions {
		b.Earned = earnedSet[b.ID]
		out[i] = b
	}
	return out
}

// AreaProgress summarizes a student's history in one deficit area for
// mastery checks. AvgAccuracy is a percentage.
type AreaProgress struct {
	Sessions    int
	AvgAccuracy float64
}

// BadgeContext carries everything badge conditions look at. The
// caller assembles it from stored stats plus the session that just
// finished.
type BadgeContext struct {
	EarnedBadges      []string
	CompletedSessions int
	TotalPoints       int
	CurrentStreak     int
	Level             int
	SessionAccuracy   float64
	SessionsToday     int
	AreasPlayed       int
	AreaStats         map[models.DeficitArea]AreaProgress
}

var masteryBadges = map[models.DeficitArea]string{
	models.PhonologicalAwareness: "sound_master",
	models.RapidNaming:           "speed_demon",
	models.WorkingMemory:         "memory_champion",
	models.VisualProcessing:      "eagle_eye",
	models.ReadingFluency:        "fluent_reader",
	models.Comprehension:         "comprehension_king",
}

// CheckBadges evaluates every badge condition against the context and
// returns the ids newly earned, in definition order.
func CheckBadges(ctx BadgeContext) []string {
	earned := make(map[string]bool, len(ctx.EarnedBadges))
	for _, id := range ctx.EarnedBadges {
		earned[id] = true
	}

	var newBadges []string
	award := func(id string, condition bool) {
		if condition && !earned[id] {
			newBadges = append(newBadges, id)
			earned[id] = true
		}
	}

	award("first_steps", ctx.CompletedSessions >= 1)
	award("getting_started", ctx.CompletedSessions >= 5)
	award("dedicated_learner", ctx.CompletedSessions >= 25)
	award("champion", ctx.CompletedSessions >= 100)

	for _, area := range models.DeficitAreas {
		stats, ok := ctx.AreaStats[area]
		award(masteryBadges[area], ok && stats.Sessions >= 5 && stats.AvgAccuracy >= 90)
	}

	award("three_day_streak", ctx.CurrentStreak >= 3)
	award("week_warrior", ctx.CurrentStreak >= 7)
	award("two_week_champion", ctx.CurrentStreak >= 14)
	award("month_master", ctx.CurrentStreak >= 30)

	award("perfect_score", ctx.SessionAccuracy >= 100)
	award("level_up", ctx.Level >= 5)
	award("level_up_10", ctx.Level >= 10)
	award("all_rounder", ctx.AreasPlayed >= len(models.DeficitAreas))
	award("point_collector", ctx.TotalPoints >= 500)
	award("point_master", ctx.TotalPoints >= 5000)
	award("speed_learner", ctx.SessionsToday >= 5)

	return newBadges
}
