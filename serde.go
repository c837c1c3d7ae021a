package fixednum

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements [encoding.TextMarshaler] using the canonical
// string form.
func (d D19) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] by routing through
// [Parse].
func (d *D19) UnmarshalText(text []byte) error {
	e, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = e
	return nil
}

// MarshalJSON implements [json.Marshaler], rendering the value as a JSON
// string to keep all 19 fractional digits intact.
func (d D19) MarshalJSON() ([]byte, error) {
	s := d.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements [json.Unmarshaler], accepting both a JSON
// string and a bare JSON number.
func (d *D19) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	e, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = e
	return nil
}

// Value implements [driver.Valuer], rendering the canonical string form.
func (d D19) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements [sql.Scanner], accepting strings, byte slices and the
// numeric types drivers commonly deliver.
func (d *D19) Scan(value any) error {
	var err error
	switch v := value.(type) {
	case string:
		*d, err = Parse(v)
	case []byte:
		*d, err = Parse(string(v))
	case int64:
		*d = FromInt64(v)
	case float64:
		*d, err = FromFloat64(v)
	default:
		err = fmt.Errorf("converting %T to %T: unsupported type", value, D19{})
	}
	return err
}
