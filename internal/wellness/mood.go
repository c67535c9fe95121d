package wellness

import "strings"

// Mood is the closed set of mood labels understood by the engine.
type Mood int

const (
	MoodUnknown Mood = iota
	MoodHappy
	MoodContent
	MoodNeutral
	MoodTired
	MoodSad
	MoodAnxious
	MoodStressed
	MoodDepressed
	MoodAngry
)

// DefaultMoodScore is used for labels outside the vocabulary.
const DefaultMoodScore = 3

var moodLabels = map[string]Mood{
	"feliz":     MoodHappy,
	"contento":  MoodContent,
	"neutral":   MoodNeutral,
	"cansado":   MoodTired,
	"triste":    MoodSad,
	"ansioso":   MoodAnxious,
	"estresado": MoodStressed,
	"deprimido": MoodDepressed,
	"enojado":   MoodAngry,
}

// ParseMood maps a free label onto the vocabulary, ignoring case and
// surrounding whitespace. Anything else is MoodUnknown.
func ParseMood(label string) Mood {
	if m, ok := moodLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return m
	}
	return MoodUnknown
}

// Score returns the 1..5 severity of m.
func (m Mood) Score() int {
	switch m {
	case MoodHappy:
		return 5
	case MoodContent:
		return 4
	case MoodNeutral, MoodTired:
		return 3
	case MoodSad, MoodAnxious, MoodStressed:
		return 2
	case MoodDepressed, MoodAngry:
		return 1
	default:
		return DefaultMoodScore
	}
}

func (m Mood) String() string {
	for label, v := range moodLabels {
		if v == m {
			return label
		}
	}
	return "unknown"
}

// MoodScore is shorthand for ParseMood(label).Score().
func MoodScore(label string) int {
	return ParseMood(label).Score()
}
