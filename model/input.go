package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Input is a submitted field value kept as it arrived: a string, an integer,
// a float, a bool, nil for JSON null, or a nested JSON object/array. It is
// bound to SQL without conversion, so the column's affinity and constraints
// decide what is stored.
type Input struct {
	v any
}

func InputOf(v any) Input {
	return Input{v: v}
}

func (in Input) Raw() any {
	return in.v
}

func (in Input) IsNull() bool {
	return in.v == nil
}

func (in *Input) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if n, ok := raw.(json.Number); ok {
		raw = number(n)
	}
	in.v = raw
	return nil
}

func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

func (in Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.v)
}

// Value hands scalars to the driver as they are. Objects and arrays have no
// column representation and fail the write.
func (in Input) Value() (driver.Value, error) {
	return driver.DefaultParameterConverter.ConvertValue(in.v)
}

func (in *Input) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		in.v = string(v)
	case time.Time:
		in.v = v.Format(time.RFC3339Nano)
	default:
		in.v = v
	}
	return nil
}

// String renders the value for plain-text messages; null renders empty.
func (in Input) String() string {
	switch v := in.v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
