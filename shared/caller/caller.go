// Package caller identifies the package and function of a calling frame.
//
// Prefer passing names explicitly where you can; stack inspection breaks
// when the compiler inlines differently than you expect, and wrappers shift
// the depth.
package caller

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrInvalidDepth = errors.New("caller: depth must not be negative")
	ErrNoCaller     = errors.New("caller: no frame at requested depth")
)

// Frame names a calling function.
type Frame struct {
	// Package is the import path, e.g. "github.com/on-the-ground/funcutils/purefn".
	Package string
	// Function is the name inside the package, e.g. "Memoize", "Tuple.String"
	// or "TestInfo.func1" for closures.
	Function string
}

func (f Frame) String() string {
	return f.Package + "." + f.Function
}

// Info returns the frame levelsDown above the function that called Info.
// Info(0) names the caller itself, Info(1) the caller's caller.
func Info(levelsDown int) (Frame, error) {
	if levelsDown < 0 {
		return Frame{}, fmt.Errorf("%w: %d", ErrInvalidDepth, levelsDown)
	}
	return frameAt(levelsDown + 3)
}

// Logger returns base named after the package levelsDown above the function
// that called Logger. It returns base unchanged when the frame is unknown.
func Logger(base *zap.Logger, levelsDown int) *zap.Logger {
	if levelsDown < 0 {
		return base
	}
	frame, err := frameAt(levelsDown + 3)
	if err != nil {
		return base
	}
	return base.Named(frame.Package)
}

// frameAt resolves the frame skip levels up, where skip counts
// runtime.Callers, frameAt and the exported entry point.
func frameAt(skip int) (Frame, error) {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip, pcs) == 0 {
		return Frame{}, fmt.Errorf("%w: %d", ErrNoCaller, skip-3)
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	if frame.Function == "" {
		return Frame{}, fmt.Errorf("%w: %d", ErrNoCaller, skip-3)
	}
	return parse(frame.Function), nil
}

// parse splits a fully qualified runtime function name such as
// "example.com/a/b.(*T).M.func1" into its package and function. The runtime
// escapes dots in the last path element as "%2e"; Package is unescaped.
func parse(fullName string) Frame {
	slash := strings.LastIndex(fullName, "/")
	dot := strings.Index(fullName[slash+1:], ".")
	if dot < 0 {
		return Frame{Function: fullName}
	}
	dot += slash + 1

	fn := fullName[dot+1:]
	fn = strings.ReplaceAll(fn, "(*", "")
	fn = strings.ReplaceAll(fn, ")", "")
	return Frame{
		Package:  strings.ReplaceAll(fullName[:dot], "%2e", "."),
		Function: fn,
	}
}
