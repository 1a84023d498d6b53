package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultTimestampLayout = time.RFC3339

type StringParsable interface {
	string | int | int64 | float64 | bool | time.Duration | decimal.Decimal | time.Time
}

// ParseStringAs parses the input string as a StringParsable type, returning the default
// if an error occurs. It will panic if the type from StringParsable is not implemented.
func ParseStringAs[T StringParsable](v string, def T) T {
	v = strings.Trim(v, `"`) // in case something comes in as if it were a json string

	var parser func(string) (any, error)
	switch any(def).(type) {
	case string:
		parser = func(s string) (any, error) { return s, nil }
	case int:
		parser = func(s string) (any, error) { return strconv.Atoi(s) }
	case int64:
		parser = func(s string) (any, error) { return strconv.ParseInt(s, 0, 64) }
	case time.Duration:
		parser = func(s string) (any, error) { return time.ParseDuration(s) }
	case bool:
		parser = func(s string) (any, error) { return strconv.ParseBool(s) }
	case float64:
		parser = func(s string) (any, error) { return strconv.ParseFloat(s, 64) }
	case decimal.Decimal:
		parser = func(s string) (any, error) { return decimal.NewFromString(s) }
	case time.Time:
		parser = func(s string) (any, error) {
			return time.Parse(defaultTimestampLayout, s)
		}
	default:
		panic("ParseStringAs got a type we can't handle")
	}

	val, err := parser(v)
	if err != nil {
		return def
	}
	return val.(T)
}

func RandomString(l int) string {
	id := uuid.NewString()
	s := strings.ReplaceAll(id, "-", "")
	for len(s) < l {
		id = uuid.NewString()
		t := strings.ReplaceAll(id, "-", "")
		s = s + t
	}
	return s[:l]
}
