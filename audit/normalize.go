package audit

import (
	"time"

	"github.com/KidawR/MainProgect/models"
	"github.com/shopspring/decimal"
)

// Fields is the details payload of an audit record.
type Fields map[string]any

// Normalize prepares a details value for the document store. Decimals
// become float64; maps and slices are walked recursively. Everything else
// is returned unchanged.
func Normalize(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		f, _ := x.Float64()
		return f
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		f, _ := x.Float64()
		return f
	case decimal.NullDecimal:
		if !x.Valid {
			return nil
		}
		f, _ := x.Decimal.Float64()
		return f
	case Fields:
		return normalizeMap(x)
	case map[string]any:
		return normalizeMap(x)
	case []Fields:
		out := make([]any, len(x))
		for i, m := range x {
			out[i] = normalizeMap(m)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Normalize(e)
		}
		return out
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Normalize(v)
	}
	return out
}

// NewRecord builds a log entry with normalized details.
func NewRecord(userID uint, action string, details Fields, at time.Time) *models.ActionLog {
	d := normalizeMap(details)
	if d == nil {
		d = map[string]any{}
	}
	return &models.ActionLog{
		UserID:    userID,
		Action:    action,
		Details:   d,
		Timestamp: at.UTC(),
	}
}
