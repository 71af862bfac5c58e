//go:build !linux || !cgo

package symbol

// Resolve always misses: RTLD_NEXT lookups need cgo on Linux.
func (Next) Resolve(string) (uintptr, bool) {
	return 0, false
}
