package data

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyKey is returned when a measurement key is blank.
var ErrEmptyKey = errors.New("data: measurement key must not be empty")

// MeasurementKey builds the key for a measurement name and optional unit,
// e.g. MeasurementKey("Weight", "kg") == "Weight (kg)".
func MeasurementKey(name, unit string) string {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, unit)
}

// Collection maps measurement keys to their series and remembers the order
// in which keys were added. The zero value is not usable; call
// NewCollection.
type Collection struct {
	keys   []string
	series map[string]*Series
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{series: make(map[string]*Series)}
}

// Add registers key with an empty series. It returns the series and whether
// the key was newly created. Adding an existing key is a no-op.
func (c *Collection) Add(key string) (*Series, bool, error) {
	if strings.TrimSpace(key) == "" {
		return nil, false, ErrEmptyKey
	}
	if s, ok := c.series[key]; ok {
		return s, false, nil
	}
	s := NewSeries()
	c.keys = append(c.keys, key)
	c.series[key] = s
	return s, true, nil
}

// Record appends or overwrites the observation for key on d, creating the
// key if needed.
func (c *Collection) Record(key string, d Date, v float64) error {
	s, _, err := c.Add(key)
	if err != nil {
		return err
	}
	if err := s.Set(d, v); err != nil {
		return fmt.Errorf("record %q: %w", key, err)
	}
	return nil
}

// Has reports whether key is tracked.
func (c *Collection) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.series[key]
	return ok
}

// Series returns the series for key.
func (c *Collection) Series(key string) (*Series, bool) {
	if c == nil {
		return nil, false
	}
	s, ok := c.series[key]
	return s, ok
}

// Keys returns the measurement keys in insertion order.
func (c *Collection) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of measurement keys.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Observations returns the total number of observations across all series.
func (c *Collection) Observations() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, s := range c.series {
		n += s.Len()
	}
	return n
}

// Empty reports whether the collection holds no observations at all. A
// collection with keys but no values is still empty.
func (c *Collection) Empty() bool {
	return c.Observations() == 0
}

// Span returns the earliest and latest observation dates across every
// series. ok is false when there are no observations.
func (c *Collection) Span() (first, last Date, ok bool) {
	if c == nil {
		return Date{}, Date{}, false
	}
	for _, key := range c.keys {
		s := c.series[key]
		lo, has := s.First()
		if !has {
			continue
		}
		hi, _ := s.Last()
		if !ok || lo.Date.Before(first) {
			first = lo.Date
		}
		if !ok || hi.Date.After(last) {
			last = hi.Date
		}
		ok = true
	}
	return first, last, ok
}

// Clone returns a deep copy that preserves key order.
func (c *Collection) Clone() *Collection {
	out := NewCollection()
	if c == nil {
		return out
	}
	for _, key := range c.keys {
		out.keys = append(out.keys, key)
		out.series[key] = c.series[key].Clone()
	}
	return out
}

// put installs s under key, appending key to the order if it is new.
func (c *Collection) put(key string, s *Series) {
	if _, ok := c.series[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.series[key] = s
}

// WithSeries returns a collection with the same key order as c where each
// series is replaced by fn's result. c is not modified.
func (c *Collection) WithSeries(fn func(key string, s *Series) *Series) *Collection {
	out := NewCollection()
	if c == nil {
		return out
	}
	for _, key := range c.keys {
		out.put(key, fn(key, c.series[key]))
	}
	return out
}
