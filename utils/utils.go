package utils

// IsIn returns true if s is one of the elements of l.
func IsIn(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
