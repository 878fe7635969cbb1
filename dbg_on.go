//go:build datetime_debug

package datetime

/*
dbg_on.go supplies the debug surface compiled under the
"datetime_debug" build tag. Events are written to the configured
writer (stderr unless redirected) whenever the EnvDebugVar
environment variable is non-empty.
*/

import (
	"io"
	"os"
	"sync"
)

/*
EnvDebugVar defines the environment variable name which governs
whether debug events are emitted when the package is built with
the "datetime_debug" tag.
*/
const EnvDebugVar = "DATETIME_DEBUG"

var dbg = struct {
	mu sync.Mutex
	w  io.Writer
	on bool
}{
	w:  os.Stderr,
	on: os.Getenv(EnvDebugVar) != "",
}

/*
SetDebugWriter redirects debug event output to the provided
[io.Writer].
*/
func SetDebugWriter(w io.Writer) {
	dbg.mu.Lock()
	defer dbg.mu.Unlock()
	dbg.w = w
}

func debugWrite(kind, label string, parts ...any) {
	if !dbg.on {
		return
	}

	b := newStrBuilder()
	b.WriteString(kind)
	b.WriteByte(' ')
	b.WriteString(label)
	for _, p := range parts {
		b.WriteByte(' ')
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case error:
			b.WriteString(v.Error())
		case interface{ String() string }:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}
	b.WriteByte('\n')

	dbg.mu.Lock()
	defer dbg.mu.Unlock()
	dbg.w.Write([]byte(b.String()))
}

func debugConstruct(label string, parts ...any) { debugWrite("new", label, parts...) }
func debugArith(label string, parts ...any)     { debugWrite("op", label, parts...) }

func debugErr(label string, err error) {
	if err != nil {
		debugWrite("err", label, err)
	}
}
