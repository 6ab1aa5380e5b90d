package status

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/bytedance/sonic"
)

// Registry is the central metrics facade
// Engine components cache pointers at construction; tick loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Format renders every metric as sorted "key=value" pairs for the debug line
func (r *Registry) Format() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.3f", key, v.Get()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return strings.Join(parts, " ")
}

// Snapshot copies every metric into a plain map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) { out[key] = v.Load() })
	r.Floats.Range(func(key string, v *AtomicFloat) { out[key] = v.Get() })
	r.Bools.Range(func(key string, v *atomic.Bool) { out[key] = v.Load() })
	r.Strings.Range(func(key string, v *AtomicString) { out[key] = v.Load() })
	return out
}

// MarshalJSON encodes the current snapshot as a flat JSON object
func (r *Registry) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(r.Snapshot())
}
