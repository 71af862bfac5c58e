//go:build linux && cgo

package trampoline

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/soar/scrollshim/internal/symbol"
)

func cstring(s string) []byte {
	return append([]byte(s), 0)
}

// strtod has the shape double(const char *, char **); with a zero second
// argument it fits AxisValueFunc.
func TestNativeBindsAxisValue(t *testing.T) {
	addr, ok := (symbol.Next{}).Resolve("strtod")
	if !ok {
		t.Fatal("strtod not found")
	}
	fn := Native{}.BindAxisValue(addr)

	buf := cstring("2.5")
	got := fn(unsafe.Pointer(&buf[0]), 0)
	runtime.KeepAlive(buf)
	if got != 2.5 {
		t.Fatalf("strtod via trampoline = %v, want 2.5", got)
	}
}

// strlen returns size_t; short strings fit the int32 of AxisSourceFunc.
func TestNativeBindsAxisSource(t *testing.T) {
	addr, ok := (symbol.Next{}).Resolve("strlen")
	if !ok {
		t.Fatal("strlen not found")
	}
	fn := Native{}.BindAxisSource(addr)

	buf := cstring("wheel")
	got := fn(unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)
	if got != 5 {
		t.Fatalf("strlen via trampoline = %d, want 5", got)
	}
}
