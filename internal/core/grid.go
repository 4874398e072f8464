package core

// Wrap applies toroidal wrapping of v into [0, n).
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return (v%n + n) % n
}
