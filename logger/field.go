package logger

import (
	"fmt"
	"time"

	"github.com/loglane/loglane/core"
)

// Field constructors. Each returns a core.Field with the matching slot
// filled; the formatters render them through Field.StringValue or their
// own typed paths.

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Int creates an integer field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Num: int64(val)}
}

// Int64 creates an integer field from an int64
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.IntType, Num: val}
}

// Float creates a floating-point field
func Float(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.FloatType, Float: val}
}

// Bool creates a boolean field
func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Num = 1
	}
	return f
}

// Time creates a timestamp field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Num: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Num: int64(val)}
}

// Err creates a field keyed "error" holding the error's message. A nil
// error yields an empty message rather than a panic.
func Err(err error) core.Field {
	f := core.Field{Key: "error", Type: core.ErrorType}
	if err != nil {
		f.Str = err.Error()
	}
	return f
}

// Stringer creates a field rendered by the value's String method
func Stringer(key string, val fmt.Stringer) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}

// Any creates a field formatted with %v
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}
