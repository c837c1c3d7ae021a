package fixednum

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"testing"
)

func TestD19_Interfaces(t *testing.T) {
	var d any

	d = D19{}
	if _, ok := d.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", d)
	}
	if _, ok := d.(fmt.Formatter); !ok {
		t.Errorf("%T does not implement fmt.Formatter", d)
	}
	if _, ok := d.(json.Marshaler); !ok {
		t.Errorf("%T does not implement json.Marshaler", d)
	}
	if _, ok := d.(encoding.TextMarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", d)
	}
	if _, ok := d.(driver.Valuer); !ok {
		t.Errorf("%T does not implement driver.Valuer", d)
	}

	d = &D19{}
	if _, ok := d.(json.Unmarshaler); !ok {
		t.Errorf("%T does not implement json.Unmarshaler", d)
	}
	if _, ok := d.(encoding.TextUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", d)
	}
	if _, ok := d.(sql.Scanner); !ok {
		t.Errorf("%T does not implement sql.Scanner", d)
	}
}

func TestD19_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		b, err := json.Marshal(map[string]D19{"v": MustParse("1.5")})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if got, want := string(b), `{"v":"1.5"}`; got != want {
			t.Errorf("Marshal = %s, want %s", got, want)
		}
	})
	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data string
			want string
		}{
			{`"1.5"`, "1.5"},
			{`"-0.0000000000000000001"`, "-0.0000000000000000001"},
			{`2.25`, "2.25"},
			{`-42`, "-42"},
		}
		for _, tt := range tests {
			var d D19
			if err := json.Unmarshal([]byte(tt.data), &d); err != nil {
				t.Errorf("Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if d != MustParse(tt.want) {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.data, d, tt.want)
			}
		}
	})
	t.Run("round trip", func(t *testing.T) {
		for _, d := range []D19{Zero, Max, Min, SmallestStep, MustParse("-1.25")} {
			b, err := json.Marshal(d)
			if err != nil {
				t.Fatalf("Marshal(%q) failed: %v", d, err)
			}
			var got D19
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", b, err)
			}
			if got != d {
				t.Errorf("round trip of %q = %q", d, got)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		var d D19
		if err := json.Unmarshal([]byte(`"oops"`), &d); err == nil {
			t.Errorf("Unmarshal(\"oops\") did not fail")
		}
	})
}

func TestD19_Text_Encoding(t *testing.T) {
	b, err := MustParse("3.25").MarshalText()
	if err != nil || string(b) != "3.25" {
		t.Errorf("MarshalText = %q, %v", b, err)
	}
	var d D19
	if err := d.UnmarshalText([]byte("-7.5")); err != nil || d != MustParse("-7.5") {
		t.Errorf("UnmarshalText = %q, %v", d, err)
	}
	if err := d.UnmarshalText([]byte("x")); err == nil {
		t.Errorf("UnmarshalText(\"x\") did not fail")
	}
}

func TestD19_SQL(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		v, err := MustParse("1.5").Value()
		if err != nil {
			t.Fatalf("Value failed: %v", err)
		}
		if got, ok := v.(string); !ok || got != "1.5" {
			t.Errorf("Value = %v, want \"1.5\"", v)
		}
	})
	t.Run("scan", func(t *testing.T) {
		tests := []struct {
			src  any
			want string
		}{
			{"1.5", "1.5"},
			{[]byte("-2.25"), "-2.25"},
			{int64(42), "42"},
			{float64(0.5), "0.5"},
		}
		for _, tt := range tests {
			var d D19
			if err := d.Scan(tt.src); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.src, err)
				continue
			}
			if d != MustParse(tt.want) {
				t.Errorf("Scan(%v) = %q, want %q", tt.src, d, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		var d D19
		if err := d.Scan(true); err == nil {
			t.Errorf("Scan(bool) did not fail")
		}
		if err := d.Scan("x"); err == nil {
			t.Errorf("Scan(\"x\") did not fail")
		}
	})
}
