package serializer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
)

// isoMillis renders a UTC instant the way JavaScript's Date.toISOString
// does: millisecond precision with a literal Z suffix.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// FormatPrimitive canonicalizes a scalar value into its wire string.
// Timestamps become UTC ISO-8601 with millisecond precision; numbers use
// their shortest round-trip decimal form; nil becomes the empty string;
// binary values pass their bytes through unchanged. Anything unrecognized
// falls back to fmt formatting.
func FormatPrimitive(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format(isoMillis)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.UTC().Format(isoMillis)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		if b, ok := oaswire.AsBlob(value); ok {
			return string(b.Data)
		}
		return fmt.Sprintf("%v", value)
	}
}
