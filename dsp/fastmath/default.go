//go:build !fastmath

package fastmath

// Default returns the strategy selected at build time: Exact.
func Default() Math {
	return Exact{}
}
