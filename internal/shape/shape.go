// Package shape coerces fields of raw store documents into the primitive
// types the API contract promises, with a zero default when a value is
// absent or unusable.
package shape

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Kind int

const (
	String Kind = iota
	Number
)

// Field declares one coercion: field name, target kind. The default is the
// kind's zero value ("" or 0).
type Field struct {
	Name string
	Kind Kind
}

// StringFields builds a schema coercing every named field to a string.
func StringFields(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name, Kind: String}
	}
	return fields
}

// NumberFields builds a schema coercing every named field to a number.
func NumberFields(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name, Kind: Number}
	}
	return fields
}

// Document returns a copy of doc with the scheduled fields coerced.
// Fields outside the schema pass through verbatim.
func Document(doc bson.M, fields []Field) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	for _, f := range fields {
		switch f.Kind {
		case String:
			out[f.Name] = ToString(doc[f.Name])
		case Number:
			out[f.Name] = ToNumber(doc[f.Name])
		}
	}
	return out
}

// Documents applies the schema to every document in order.
func Documents(docs []bson.M, fields []Field) []bson.M {
	out := make([]bson.M, len(docs))
	for i, doc := range docs {
		out[i] = Document(doc, fields)
	}
	return out
}

// ToString forces a raw value to a string, "" when absent.
func ToString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case primitive.ObjectID:
		return val.Hex()
	default:
		return fmt.Sprint(val)
	}
}

// ToNumber forces a raw value to a float64, 0 when absent or non-numeric.
// Numeric strings (as imported from spreadsheets) are parsed.
func ToNumber(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
