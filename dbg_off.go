//go:build !datetime_debug

package datetime

/*
dbg_off.go supplies the no-op debug surface compiled by default.
Build with the "datetime_debug" tag to activate dbg_on.go instead.
*/

func debugConstruct(_ string, _ ...any) {}
func debugArith(_ string, _ ...any)     {}
func debugErr(_ string, _ error)        {}
