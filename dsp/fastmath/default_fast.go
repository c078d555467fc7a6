//go:build fastmath

package fastmath

// Default returns the strategy selected at build time: Fast.
func Default() Math {
	return Fast{}
}
