package utils

// DedupeStrings drops blanks and repeated values, keeping first-seen order
func DedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Batches splits in into consecutive chunks of at most size elements
func Batches(in []string, size int) [][]string {
	if size <= 0 {
		size = len(in)
	}
	var batches [][]string
	for start := 0; start < len(in); start += size {
		end := start + size
		if end > len(in) {
			end = len(in)
		}
		batches = append(batches, in[start:end])
	}
	return batches
}
