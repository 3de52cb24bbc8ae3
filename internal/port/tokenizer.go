package port

// Tokenizer normalizes text for similarity comparison.
type Tokenizer interface {
	Tokenize(text string) []string

	Similarity(a, b string) float64
}
