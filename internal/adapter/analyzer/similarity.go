package analyzer

// Similarity computes the Jaccard similarity between two paragraphs as a
// percentage. Both inputs are normalized independently into token sets;
// similarity is |intersection| / |union| * 100. If either set is empty the
// similarity is 0, so two empty paragraphs never score as identical.
func (t *Tokenizer) Similarity(a, b string) float64 {
	setA := t.TokenSet(a)
	setB := t.TokenSet(b)

	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union) * 100
}
