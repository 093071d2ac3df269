package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Rating is a star score, expected in 1..5 but not range checked.
// Browser forms submit it as a string, so both "5" and 5 decode; values that
// are not numbers at all decode as zero rather than failing the record.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	raw, _ := unquoteNumber(data)
	if raw == "" {
		*r = 0
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*r = Rating(n)
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		*r = Rating(int(f))
		return nil
	}
	*r = 0
	return nil
}

// Amount is a price in rubles. Numbers and numeric strings decode into Value;
// any other text, such as "от 5 000 ₽", is kept verbatim in Text and encoded
// back as that string.
type Amount struct {
	Value float64
	Text  string
}

// NewAmount returns a numeric amount.
func NewAmount(value float64) *Amount {
	return &Amount{Value: value}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		trimmed := strings.TrimSpace(s)
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			*a = Amount{Value: f}
			return nil
		}
		*a = Amount{Text: s}
		if trimmed == "" {
			*a = Amount{}
		}
		return nil
	}

	*a = Amount{}
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		a.Value = f
	}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Text != "" {
		return json.Marshal(a.Text)
	}
	return json.Marshal(a.Value)
}

// String renders the amount the way it was supplied.
func (a Amount) String() string {
	if a.Text != "" {
		return a.Text
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}

func unquoteNumber(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}
