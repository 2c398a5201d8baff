package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

// decodeJSON streams the document token by token so that measurement order
// survives; unmarshalling into a Go map would lose it.
func decodeJSON(raw []byte) (*data.Collection, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	c := data.NewCollection()
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if _, _, err := c.Add(key); err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("measurement %q: %w", key, err)
		}
		for dec.More() {
			rawDate, err := stringToken(dec)
			if err != nil {
				return nil, fmt.Errorf("measurement %q: %w", key, err)
			}
			d, err := data.ParseDate(rawDate)
			if err != nil {
				return nil, fmt.Errorf("measurement %q: %w", key, err)
			}
			v, err := numberToken(dec)
			if err != nil {
				return nil, fmt.Errorf("measurement %q on %s: %w", key, d, err)
			}
			if err := c.Record(key, d, v); err != nil {
				return nil, err
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}
	return c, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}

func numberToken(dec *json.Decoder) (float64, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, err
	}
	n, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("expected number, got %v", tok)
	}
	return n.Float64()
}

// encodeJSON writes the collection with two-space indentation, measurements
// in collection order and dates ascending.
func encodeJSON(c *data.Collection) ([]byte, error) {
	var buf bytes.Buffer
	keys := c.Keys()
	if len(keys) == 0 {
		return []byte("{}\n"), nil
	}

	buf.WriteString("{\n")
	for i, key := range keys {
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(k)
		buf.WriteString(": ")

		s, _ := c.Series(key)
		pts := s.Points()
		if len(pts) == 0 {
			buf.WriteString("{}")
		} else {
			buf.WriteString("{\n")
			for j, p := range pts {
				v, err := json.Marshal(p.Value)
				if err != nil {
					return nil, fmt.Errorf("measurement %q on %s: %w", key, p.Date, err)
				}
				fmt.Fprintf(&buf, "    %q: %s", p.Date.String(), v)
				if j < len(pts)-1 {
					buf.WriteByte(',')
				}
				buf.WriteByte('\n')
			}
			buf.WriteString("  }")
		}
		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
