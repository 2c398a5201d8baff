// Package data holds the measurement data model: calendar dates, sparse
// per-measurement series, and the ordered collection that is loaded, mutated
// by a recording session, and saved back to disk.
//
// Series are sparse date->value maps. Readers always consume them sorted by
// date, so insertion order inside a series is irrelevant. The collection, on
// the other hand, remembers the order in which measurement keys were added,
// because chart colors are assigned by position.
package data

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNonFinite is returned when an observation value is NaN or infinite.
var ErrNonFinite = errors.New("data: value must be a finite number")

// Observation is a single (date, value) pair.
type Observation struct {
	Date  Date
	Value float64
}

// Series is a sparse mapping from calendar date to value for one
// measurement. No two observations share a date.
type Series struct {
	values map[Date]float64
}

// NewSeries returns an empty series.
func NewSeries() *Series {
	return &Series{values: make(map[Date]float64)}
}

// Set records v at d, overwriting any existing value for that day.
func (s *Series) Set(d Date, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v on %s", ErrNonFinite, v, d)
	}
	if s.values == nil {
		s.values = make(map[Date]float64)
	}
	s.values[d] = v
	return nil
}

// Get returns the value recorded on d.
func (s *Series) Get(d Date) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.values[d]
	return v, ok
}

// Has reports whether an observation exists on d.
func (s *Series) Has(d Date) bool {
	_, ok := s.Get(d)
	return ok
}

// Len returns the number of observations.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Dates returns the observation dates in ascending order.
func (s *Series) Dates() []Date {
	if s.Len() == 0 {
		return nil
	}
	dates := make([]Date, 0, len(s.values))
	for d := range s.values {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Points returns all observations in ascending date order.
func (s *Series) Points() []Observation {
	dates := s.Dates()
	if dates == nil {
		return nil
	}
	out := make([]Observation, len(dates))
	for i, d := range dates {
		out[i] = Observation{Date: d, Value: s.values[d]}
	}
	return out
}

// Values returns the observation values in ascending date order.
func (s *Series) Values() []float64 {
	pts := s.Points()
	if pts == nil {
		return nil
	}
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}
	return out
}

// LastN returns the most recent n observations in ascending date order.
func (s *Series) LastN(n int) []Observation {
	pts := s.Points()
	if n < 0 {
		n = 0
	}
	if n < len(pts) {
		pts = pts[len(pts)-n:]
	}
	return pts
}

// First returns the earliest observation.
func (s *Series) First() (Observation, bool) {
	dates := s.Dates()
	if len(dates) == 0 {
		return Observation{}, false
	}
	return Observation{Date: dates[0], Value: s.values[dates[0]]}, true
}

// Last returns the latest observation.
func (s *Series) Last() (Observation, bool) {
	dates := s.Dates()
	if len(dates) == 0 {
		return Observation{}, false
	}
	d := dates[len(dates)-1]
	return Observation{Date: d, Value: s.values[d]}, true
}

// Clone returns an independent copy of s.
func (s *Series) Clone() *Series {
	out := NewSeries()
	if s == nil {
		return out
	}
	for d, v := range s.values {
		out.values[d] = v
	}
	return out
}
