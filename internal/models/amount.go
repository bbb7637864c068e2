package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Amount is a currency amount in a single implied currency unit.
// Values arriving from clients or from older dashboard documents may be
// numbers, numeric strings ("1200", "$1,200.50"), null or garbage; anything
// that does not parse to a non-negative number is coerced to 0 so that
// downstream arithmetic never fails on malformed input.
type Amount float64

// ParseAmount converts a free-form string to a non-negative amount.
// Unparsable or negative values yield 0.
func ParseAmount(raw string) Amount {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return Amount(f)
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*a = 0
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil || f < 0 {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// UnmarshalBSONValue applies the same coercion to stored documents, where
// amounts written by earlier versions of the dashboard may be strings.
func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDouble:
		f := rv.Double()
		if f < 0 {
			f = 0
		}
		*a = Amount(f)
	case bson.TypeInt32:
		v := rv.Int32()
		if v < 0 {
			v = 0
		}
		*a = Amount(v)
	case bson.TypeInt64:
		v := rv.Int64()
		if v < 0 {
			v = 0
		}
		*a = Amount(v)
	case bson.TypeString:
		*a = ParseAmount(rv.StringValue())
	default:
		*a = 0
	}
	return nil
}
