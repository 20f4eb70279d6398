package domain

// Mode identifies a learning mode.
type Mode string

const (
	ModeFlashcards Mode = "flashcards"
	ModeQuiz       Mode = "quiz"
	ModeTyped      Mode = "typed"
	ModeSpeed      Mode = "speed"
	ModeSentences  Mode = "sentences"
)

// ValidModes is the canonical set of accepted mode strings.
var ValidModes = map[string]bool{
	"flashcards": true, "quiz": true, "typed": true,
	"speed": true, "sentences": true,
}

// Direction is the translation direction of a question.
type Direction int

const (
	EnToDe Direction = iota
	DeToEn
)

func (d Direction) String() string {
	if d == EnToDe {
		return "English → German"
	}
	return "German → English"
}

// AllCategories is the pseudo-category label for merged play across
// every loaded category. Progress is still recorded against each
// entry's true category, never against this label.
const AllCategories = "all"
