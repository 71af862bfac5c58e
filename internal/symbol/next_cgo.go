//go:build linux && cgo

package symbol

/*
#cgo LDFLAGS: -ldl
#define _GNU_SOURCE
#include <dlfcn.h>
#include <stdlib.h>

static void *next_symbol(const char *name) {
	return dlsym(RTLD_NEXT, name);
}
*/
import "C"

import "unsafe"

func (Next) Resolve(name string) (uintptr, bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	p := C.next_symbol(cname)
	if p == nil {
		return 0, false
	}
	return uintptr(p), true
}
