package domain

import (
	"bytes"
	"math"
	"strconv"
)

// Count is an integer metric. The backend serializes every numeric column as
// a float (3.0) or null, so Count accepts both.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		*c = 0
		return nil
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return err
	}
	*c = Count(math.Round(f))
	return nil
}

func (c Count) Int() int {
	return int(c)
}

// Flag is a boolean metric that may also arrive as 0/1, "true"/"false" or null.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	switch string(raw) {
	case "", "null", "false", "False", "0", "0.0":
		*f = false
	default:
		v, err := strconv.ParseBool(string(raw))
		if err != nil {
			n, nerr := strconv.ParseFloat(string(raw), 64)
			if nerr != nil {
				return err
			}
			v = n != 0
		}
		*f = Flag(v)
	}
	return nil
}
