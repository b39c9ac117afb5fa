package weather

const (
	PhraseMuchHotter = "much hotter"
	PhraseHotter     = "hotter"
	PhraseSimilar    = "similar to actual temp"
	PhraseCooler     = "cooler"
	PhraseMuchCooler = "much cooler"
)

// FeelsLikePhrase describes feelsLike relative to actual. A delta of exactly
// two degrees either way is not "much".
func FeelsLikePhrase(actual, feelsLike int) string {
	delta := feelsLike - actual
	switch {
	case delta > 2:
		return PhraseMuchHotter
	case delta > 0:
		return PhraseHotter
	case delta < -2:
		return PhraseMuchCooler
	case delta < 0:
		return PhraseCooler
	default:
		return PhraseSimilar
	}
}
