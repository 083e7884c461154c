// Package catalog holds the static mini-game definitions. Games are
// code, not data: the set changes only with a release, so there is no
// games table.
package catalog

import "github.com/eyeradar/lexiquest/internal/models"

var games = []models.GameDefinition{
	// Phonological Awareness
	{
		ID:           "sound_safari",
		Name:         "Sound Safari",
		Description:  "Identify beginning, ending, or middle sounds in words. Match sounds to fun animals and objects!",
		DeficitArea:  models.PhonologicalAwareness,
		GameType:     models.GameMultipleChoice,
		AgeRangeMin:  4,
		AgeRangeMax:  8,
		Mechanics:    "Match sounds to animals/objects",
		Instructions: "Listen to the target sound, then pick the word that contains that sound in the correct position.",
		Icon:         "🦁",
	},
	{
		ID:           "rhyme_time_race",
		Name:         "Rhyme Time Race",
		Description:  "Match rhyming word pairs before the timer runs out! Build phonological connections through fun speed challenges.",
		DeficitArea:  models.PhonologicalAwareness,
		GameType:     models.GameSpeedRound,
		AgeRangeMin:  5,
		AgeRangeMax:  10,
		Mechanics:    "Speed matching with visual cards",
		Instructions: "Find the word that rhymes with the target word as fast as you can! Beat the clock!",
		Icon:         "⏰",
	},
	{
		ID:           "syllable_stomper",
		Name:         "Syllable Stomper",
		Description:  "Count syllables in words using rhythm-based activities. Tap along to learn word patterns!",
		DeficitArea:  models.PhonologicalAwareness,
		GameType:     models.GameSequenceTap,
		AgeRangeMin:  4,
		AgeRangeMax:  9,
		Mechanics:    "Kinesthetic input, rhythm-based",
		Instructions: "Look at the word and tap the correct number of beats (syllables). Tap the buttons in rhythm!",
		Icon:         "🥁",
	},
	{
		ID:           "phoneme_blender",
		Name:         "Phoneme Blender",
		Description:  "Blend individual sounds together to build complete words. Master the building blocks of reading!",
		DeficitArea:  models.PhonologicalAwareness,
		GameType:     models.GameWordBuilding,
		AgeRangeMin:  6,
		AgeRangeMax:  12,
		Mechanics:    "Drag sounds to build words",
		Instructions: "See the individual sounds. Tap them in the right order to blend them into a word!",
		Icon:         "🧩",
	},
	{
		ID:           "sound_swap",
		Name:         "Sound Swap",
		Description:  "Replace sounds in words to create new words. A fun phoneme manipulation puzzle!",
		DeficitArea:  models.PhonologicalAwareness,
		GameType:     models.GameWordBuilding,
		AgeRangeMin:  7,
		AgeRangeMax:  13,
		Mechanics:    "Manipulation puzzles",
		Instructions: "Change the specified sound in the word to make a new word. Tap the letters to swap!",
		Icon:         "🔄",
	},
	{
		ID:           "sound_matching",
		Name:         "Sound Matching",
		Description:  "Listen to two words and decide if they rhyme or share the same ending sound. Train your ear for phonological patterns!",
		DeficitArea:  models.PhonologicalAwareness,
		GameType:     models.GameYesNo,
		AgeRangeMin:  4,
		AgeRangeMax:  10,
		Mechanics:    "Binary auditory discrimination with TTS",
		Instructions: "Listen to the two words. Do they sound the same at the end? Click Yes or No!",
		Icon:         "👂",
	},
	{
		ID:           "word_sound_match",
		Name:         "Word-to-Sound Matching",
		Description:  "Find the word that sounds like the target! Pick the matching sound from three choices to sharpen phonological skills.",
		DeficitArea:  models.PhonologicalAwareness,
		GameType:     models.GameMultipleChoice,
		AgeRangeMin:  5,
		AgeRangeMax:  11,
		Mechanics:    "Auditory matching with TTS and choices",
		Instructions: "Look at the word on top and listen to it. Which of the three words below sounds the same? Tap to choose!",
		Icon:         "🔊",
	},

	// Rapid Automatized Naming
	{
		ID:           "speed_namer",
		Name:         "Speed Namer",
		Description:  "Rapidly name sequences of letters, numbers, and colors to build automaticity.",
		DeficitArea:  models.RapidNaming,
		GameType:     models.GameSpeedRound,
		AgeRangeMin:  6,
		AgeRangeMax:  14,
		Mechanics:    "Timed naming with voice or tap",
		Instructions: "Name each item as fast as you can! Select the correct answer before time runs out!",
		Icon:         "⚡",
	},
	{
		ID:           "flash_card_frenzy",
		Name:         "Flash Card Frenzy",
		Description:  "Quick recognition of high-frequency words with progressively increasing speed.",
		DeficitArea:  models.RapidNaming,
		GameType:     models.GameSpeedRound,
		AgeRangeMin:  7,
		AgeRangeMax:  14,
		Mechanics:    "Progressive speed increase",
		Instructions: "Read the word shown and quickly select its meaning. Speed increases as you go!",
		Icon:         "🃏",
	},
	{
		ID:           "object_blitz",
		Name:         "Object Blitz",
		Description:  "Name common objects as fast as possible to strengthen visual-verbal connections.",
		DeficitArea:  models.RapidNaming,
		GameType:     models.GameSpeedRound,
		AgeRangeMin:  5,
		AgeRangeMax:  10,
		Mechanics:    "Visual recognition speed",
		Instructions: "Look at the picture description and quickly select its name. Beat the clock!",
		Icon:         "🎯",
	},
	{
		ID:           "letter_stream",
		Name:         "Letter Stream",
		Description:  "Identify target letters in a flowing stream of characters. Train your visual attention and naming speed!",
		DeficitArea:  models.RapidNaming,
		GameType:     models.GameSpotTarget,
		AgeRangeMin:  6,
		AgeRangeMax:  12,
		Mechanics:    "Visual attention + naming",
		Instructions: "Watch the stream of letters and tap the target letter when you see it!",
		Icon:         "🌊",
	},
	{
		ID:           "ran_grid",
		Name:         "RAN Grid Challenge",
		Description:  "Name a grid of images as fast and accurately as possible! Animals, colors, and objects test your rapid naming speed.",
		DeficitArea:  models.RapidNaming,
		GameType:     models.GameGridNaming,
		AgeRangeMin:  5,
		AgeRangeMax:  12,
		Mechanics:    "Grid-based rapid naming with voice recording",
		Instructions: "Press the microphone, then name every image in the grid from left to right, top to bottom, as fast as you can!",
		Icon:         "🐾",
	},

	// Working Memory
	{
		ID:           "memory_matrix",
		Name:         "Memory Matrix",
		Description:  "Remember and recreate visual patterns on a grid. Strengthen your visual working memory!",
		DeficitArea:  models.WorkingMemory,
		GameType:     models.GameGridMemory,
		AgeRangeMin:  6,
		AgeRangeMax:  14,
		Mechanics:    "Grid-based visual memory",
		Instructions: "Watch the pattern light up on the grid, then tap the squares to recreate it from memory!",
		Icon:         "🔲",
	},
	{
		ID:           "sequence_keeper",
		Name:         "Sequence Keeper",
		Description:  "Remember and repeat sequences of items. Build your sequential memory skills!",
		DeficitArea:  models.WorkingMemory,
		GameType:     models.GameSequenceTap,
		AgeRangeMin:  5,
		AgeRangeMax:  12,
		Mechanics:    "Auditory/visual sequences",
		Instructions: "Watch the sequence appear, then tap the numbers in the same order to repeat it!",
		Icon:         "🔢",
	},
	{
		ID:           "backward_spell",
		Name:         "Backward Spell",
		Description:  "Spell words backwards to exercise verbal working memory. A brain-bending challenge!",
		DeficitArea:  models.WorkingMemory,
		GameType:     models.GameTextInput,
		AgeRangeMin:  8,
		AgeRangeMax:  14,
		Mechanics:    "Verbal working memory",
		Instructions: "Read the word, then type it backwards. Think carefully!",
		Icon:         "🔙",
	},
	{
		ID:           "story_recall",
		Name:         "Story Recall",
		Description:  "Remember details from short passages. Practice comprehension and memory together!",
		DeficitArea:  models.WorkingMemory,
		GameType:     models.GameTimedReading,
		AgeRangeMin:  7,
		AgeRangeMax:  14,
		Mechanics:    "Comprehension + memory",
		Instructions: "Read the short story carefully — it will disappear! Then answer questions from memory.",
		Icon:         "📖",
	},
	{
		ID:           "dual_task_challenge",
		Name:         "Dual Task Challenge",
		Description:  "Process information while remembering other details. Train your central executive function!",
		DeficitArea:  models.WorkingMemory,
		GameType:     models.GameDualTask,
		AgeRangeMin:  9,
		AgeRangeMax:  14,
		Mechanics:    "Central executive training",
		Instructions: "Remember the word shown, then solve the math problem. You'll be asked about both!",
		Icon:         "🧠",
	},
	{
		ID:           "memory_recall",
		Name:         "Memory Recall",
		Description:  "After playing exercises you'll see images — can you remember which ones appeared earlier? Test your visual memory!",
		DeficitArea:  models.WorkingMemory,
		GameType:     models.GameGridMemory,
		AgeRangeMin:  5,
		AgeRangeMax:  12,
		Mechanics:    "Image recognition memory",
		Instructions: "You'll see a grid of images. Some were shown to you before, some are new. Pick the ones you remember seeing (or the new ones, depending on the challenge)!",
		Icon:         "🧩",
	},

	// Visual Processing
	{
		ID:           "letter_detective",
		Name:         "Letter Detective",
		Description:  "Find hidden letters among visual distractors. Sharpen your visual discrimination!",
		DeficitArea:  models.VisualProcessing,
		GameType:     models.GameSpotTarget,
		AgeRangeMin:  5,
		AgeRangeMax:  10,
		Mechanics:    "Visual discrimination",
		Instructions: "Find and tap the target letter hidden in the grid of letters!",
		Icon:         "🔍",
	},
	{
		ID:           "tracking_trail",
		Name:         "Tracking Trail",
		Description:  "Follow moving targets along a path. Exercise your eye tracking skills!",
		DeficitArea:  models.VisualProcessing,
		GameType:     models.GameTracking,
		AgeRangeMin:  6,
		AgeRangeMax:  12,
		Mechanics:    "Eye tracking exercises",
		Instructions: "Follow the trail of directions and remember where you end up!",
		Icon:         "👁️",
	},
	{
		ID:           "pattern_matcher",
		Name:         "Pattern Matcher",
		Description:  "Match visual patterns quickly and accurately. Build visual memory and discrimination!",
		DeficitArea:  models.VisualProcessing,
		GameType:     models.GamePatternMatch,
		AgeRangeMin:  5,
		AgeRangeMax:  12,
		Mechanics:    "Visual memory + discrimination",
		Instructions: "Study the pattern shown, then pick the exact match from the options. Look carefully for differences!",
		Icon:         "🎨",
	},
	{
		ID:           "mirror_image",
		Name:         "Mirror Image",
		Description:  "Identify reversed or rotated letters. Master letter orientation to avoid common reversals!",
		DeficitArea:  models.VisualProcessing,
		GameType:     models.GameSpotTarget,
		AgeRangeMin:  6,
		AgeRangeMax:  10,
		Mechanics:    "Orientation training",
		Instructions: "Look at the letters shown. Tap the one that is written correctly (not mirrored)!",
		Icon:         "🪞",
	},
	{
		ID:           "visual_closure",
		Name:         "Visual Closure",
		Description:  "Complete partial images and words. Strengthen your visual completion skills!",
		DeficitArea:  models.VisualProcessing,
		GameType:     models.GameFillBlank,
		AgeRangeMin:  7,
		AgeRangeMax:  12,
		Mechanics:    "Gestalt completion",
		Instructions: "Look at the partial word with missing letters and figure out the complete word!",
		Icon:         "✨",
	},

	// Reading Fluency
	{
		ID:           "phrase_flash",
		Name:         "Phrase Flash",
		Description:  "Read phrases quickly before they disappear! Build reading speed and confidence!",
		DeficitArea:  models.ReadingFluency,
		GameType:     models.GameTimedReading,
		AgeRangeMin:  7,
		AgeRangeMax:  14,
		Mechanics:    "Timed phrase reading",
		Instructions: "A phrase will flash on screen briefly. Read it and then answer the question about it!",
		Icon:         "💨",
	},
	{
		ID:           "word_ladder",
		Name:         "Word Ladder",
		Description:  "Build word chains by changing one letter at a time. Practice decoding and fluency!",
		DeficitArea:  models.ReadingFluency,
		GameType:     models.GameWordBuilding,
		AgeRangeMin:  8,
		AgeRangeMax:  14,
		Mechanics:    "Decoding + fluency",
		Instructions: "Change one letter in the word to make a new word. Build a chain from start to finish!",
		Icon:         "🪜",
	},
	{
		ID:           "repeated_reader",
		Name:         "Repeated Reader",
		Description:  "Practice reading passages multiple times for fluency gains. Track your improvement!",
		DeficitArea:  models.ReadingFluency,
		GameType:     models.GameTimedReading,
		AgeRangeMin:  6,
		AgeRangeMax:  14,
		Mechanics:    "Repeated reading protocol",
		Instructions: "Read the passage, then answer comprehension questions. Try to improve your speed!",
		Icon:         "🔁",
	},
	{
		ID:           "sight_word_sprint",
		Name:         "Sight Word Sprint",
		Description:  "Rapid recognition of high-frequency sight words. Build automatic word recognition!",
		DeficitArea:  models.ReadingFluency,
		GameType:     models.GameSpeedRound,
		AgeRangeMin:  6,
		AgeRangeMax:  12,
		Mechanics:    "Automaticity building",
		Instructions: "Spot the correctly spelled sight word as fast as you can! Speed matters!",
		Icon:         "🏃",
	},
	{
		ID:           "prosody_practice",
		Name:         "Prosody Practice",
		Description:  "Read with expression and rhythm. Learn to make reading sound natural and engaging!",
		DeficitArea:  models.ReadingFluency,
		GameType:     models.GameMultipleChoice,
		AgeRangeMin:  8,
		AgeRangeMax:  14,
		Mechanics:    "Audio modeling + practice",
		Instructions: "Read the sentence with the correct expression based on the punctuation and meaning.",
		Icon:         "🎵",
	},
	{
		ID:           "decoding_read_aloud",
		Name:         "Decoding Challenge",
		Description:  "Read words and pseudo-words aloud to practice decoding skills! Includes made-up words to test letter-sound knowledge.",
		DeficitArea:  models.ReadingFluency,
		GameType:     models.GameVoiceInput,
		AgeRangeMin:  5,
		AgeRangeMax:  12,
		Mechanics:    "Voice-based decoding practice with STT",
		Instructions: "A word appears on screen. Press the microphone button, say the word out loud, then click to move on. Some words are made up — try your best to sound them out!",
		Icon:         "🎤",
	},

	// Reading Comprehension
	{
		ID:           "question_quest",
		Name:         "Question Quest",
		Description:  "Answer questions about reading passages. Build your comprehension skills step by step!",
		DeficitArea:  models.Comprehension,
		GameType:     models.GameMultipleChoice,
		AgeRangeMin:  7,
		AgeRangeMax:  14,
		Mechanics:    "Multiple choice + free response",
		Instructions: "Read the passage carefully, then answer the questions that follow.",
		Icon:         "❓",
	},
	{
		ID:           "main_idea_hunter",
		Name:         "Main Idea Hunter",
		Description:  "Identify the central theme of passages. Learn to see the big picture in what you read!",
		DeficitArea:  models.Comprehension,
		GameType:     models.GameMultipleChoice,
		AgeRangeMin:  8,
		AgeRangeMax:  14,
		Mechanics:    "Summarization training",
		Instructions: "Read the passage and identify the main idea from the options given.",
		Icon:         "🎯",
	},
	{
		ID:           "inference_detective",
		Name:         "Inference Detective",
		Description:  "Draw conclusions from text clues. Become a master at reading between the lines!",
		DeficitArea:  models.Comprehension,
		GameType:     models.GameMultipleChoice,
		AgeRangeMin:  9,
		AgeRangeMax:  14,
		Mechanics:    "Critical thinking",
		Instructions: "Read the passage and use clues from the text to answer what isn't directly stated.",
		Icon:         "🕵️",
	},
	{
		ID:           "vocabulary_builder",
		Name:         "Vocabulary Builder",
		Description:  "Learn new words in context. Use clues from the sentence to figure out word meanings!",
		DeficitArea:  models.Comprehension,
		GameType:     models.GameFillBlank,
		AgeRangeMin:  7,
		AgeRangeMax:  14,
		Mechanics:    "Contextual vocabulary",
		Instructions: "Read the sentence and use context clues to determine the meaning of the highlighted word.",
		Icon:         "📚",
	},
	{
		ID:           "story_sequencer",
		Name:         "Story Sequencer",
		Description:  "Put story events in the correct order. Master narrative comprehension!",
		DeficitArea:  models.Comprehension,
		GameType:     models.GameSorting,
		AgeRangeMin:  6,
		AgeRangeMax:  12,
		Mechanics:    "Narrative comprehension",
		Instructions: "Read the story events and arrange them in the correct order by tapping them first to last.",
		Icon:         "📋",
	},
	{
		ID:           "word_image_match",
		Name:         "Word-Image Match",
		Description:  "Match words to their pictures and pictures to their words! Build vocabulary and reading comprehension through visual connections.",
		DeficitArea:  models.Comprehension,
		GameType:     models.GameImageMatch,
		AgeRangeMin:  4,
		AgeRangeMax:  10,
		Mechanics:    "Bidirectional word-image association",
		Instructions: "See the word? Pick the matching picture! See the picture? Pick the matching word! Connect what you read with what you see.",
		Icon:         "🖼️",
	},

	// Castle boss reward level
	{
		ID:           "castle_challenge",
		Name:         "Castle Boss Challenge",
		Description:  "Battle fearsome castle bosses! Defeat three bosses and answer questions between each fight. A reward level that tests your skills!",
		DeficitArea:  models.PhonologicalAwareness,
		GameType:     models.GameCastleBoss,
		AgeRangeMin:  5,
		AgeRangeMax:  14,
		Mechanics:    "Side-scrolling boss fight with quiz questions",
		Instructions: "Use arrow keys to move and jump. Press X to shoot spells at the boss. Defeat the boss, then answer a question to advance!",
		Icon:         "🏰",
	},
}

var byID map[string]models.GameDefinition

func init() {
	byID = make(map[string]models.GameDefinition, len(games))
	for i := range games {
		if games[i].DifficultyLevels == 0 {
			games[i].DifficultyLevels = 10
		}
		byID[games[i].ID] = games[i]
	}
}

// All returns every game in catalog order.
func All() []models.GameDefinition {
	out := make([]models.GameDefinition, len(games))
	copy(out, games)
	return out
}

// ByID looks up a single game. The second return value reports whether
// the id is known.
func ByID(id string) (models.GameDefinition, bool) {
	g, ok := byID[id]
	return g, ok
}

// ByArea returns all games targeting one deficit area, in catalog order.
func ByArea(area models.DeficitArea) []models.GameDefinition {
	var out []models.GameDefinition
	for _, g := range games {
		if g.DeficitArea == area {
			out = append(out, g)
		}
	}
	return out
}

// ByAreaForAge returns games for one area that fit the student's age.
func ByAreaForAge(area models.DeficitArea, age int) []models.GameDefinition {
	var out []models.GameDefinition
	for _, g := range ByArea(area) {
		if g.AgeRangeMin <= age && age <= g.AgeRangeMax {
			out = append(out, g)
		}
	}
	return out
}

// Resolve maps game ids to definitions, silently dropping unknown ids.
// Used for teacher-authored worlds, whose id lists may outlive catalog
// changes.
func Resolve(ids []string) []models.GameDefinition {
	var out []models.GameDefinition
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			out = append(out, g)
		}
	}
	return out
}
