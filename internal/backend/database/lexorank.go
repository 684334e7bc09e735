package database

const (
	// Default mid character used for simple Next operations.
	midChar = 'U'
)

// Next returns a new rank string that sorts lexicographically after the given previous rank.
// If prev is empty, it returns a single midChar. Otherwise, it appends midChar, ensuring the
// new rank is strictly greater.
func Next(prev string) string {
	if prev == "" {
		return string([]rune{midChar})
	}
	return prev + string([]rune{midChar})
}
