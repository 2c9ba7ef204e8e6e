package corpus

// Merge flattens per-file block sequences, in the order given, into one
// sequence with exact duplicates removed. The first occurrence of a text
// determines its position; every later occurrence, in any sequence, is
// skipped. The seen-set is local to the call so repeated merges of the same
// input are byte-identical.
func Merge(sequences ...[]string) []string {
	seen := make(map[string]struct{})
	var unique []string

	for _, blocks := range sequences {
		for _, text := range blocks {
			if _, ok := seen[text]; ok {
				continue
			}
			seen[text] = struct{}{}
			unique = append(unique, text)
		}
	}

	return unique
}
