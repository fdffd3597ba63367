package blacklog

import (
	"fmt"
	"time"
)

// formatValue renders an attribute value through the formatter, dispatching
// on the concrete type. Values implementing Format take over entirely.
func formatValue(f *Formatter, v any) error {
	switch v := v.(type) {
	case Format:
		return v.Format(f)
	case string:
		return f.WriteStr(v)
	case bool:
		return f.WriteBool(v)
	case int:
		return f.WriteInt(int64(v))
	case int8:
		return f.WriteInt(int64(v))
	case int16:
		return f.WriteInt(int64(v))
	case int32:
		return f.WriteInt(int64(v))
	case int64:
		return f.WriteInt(v)
	case uint:
		return f.WriteUint(uint64(v))
	case uint8:
		return f.WriteUint(uint64(v))
	case uint16:
		return f.WriteUint(uint64(v))
	case uint32:
		return f.WriteUint(uint64(v))
	case uint64:
		return f.WriteUint(v)
	case uintptr:
		return f.WriteUint(uint64(v))
	case float32:
		return f.WriteFloat(float64(v))
	case float64:
		return f.WriteFloat(v)
	case []byte:
		return f.WriteStr(string(v))
	case time.Time:
		return f.WriteStr(v.Format(time.RFC3339Nano))
	case time.Duration:
		return f.WriteStr(v.String())
	case error:
		return f.WriteStr(v.Error())
	case fmt.Stringer:
		return f.WriteStr(v.String())
	case nil:
		return f.WriteStr("nil")
	default:
		return f.WriteStr(fmt.Sprint(v))
	}
}
