package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType selects which slot of a Field carries the value. The set is
// exactly what the built-in formatters know how to render; anything else
// travels as AnyType and is formatted with %v.
type FieldType uint8

const (
	StringType FieldType = iota
	// IntType covers every integer width; the value is widened to int64.
	IntType
	FloatType
	BoolType
	// TimeType stores the instant as Unix nanoseconds in Num.
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field is a single key/value attachment on a log entry. Only the slot
// named by Type is meaningful; the remaining slots stay zero. Numeric
// kinds (int, bool, time, duration) share Num.
type Field struct {
	Key   string
	Type  FieldType
	Num   int64
	Float float64
	Str   string
	Any   interface{}
}

// StringValue renders the field's value for text output.
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case IntType:
		return strconv.FormatInt(f.Num, 10)
	case FloatType:
		return strconv.FormatFloat(f.Float, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Num != 0)
	case TimeType:
		return time.Unix(0, f.Num).Format(time.RFC3339)
	case DurationType:
		return time.Duration(f.Num).String()
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}
