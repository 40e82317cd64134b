package nodeset

import (
	"fmt"
	"time"
)

// Options holds per-plugin settings keyed by plugin name. It is passed to
// whatever needs it; there is no global instance.
type Options map[string]map[string]any

// Set merges opts into the settings of plugin where.
func (o *Options) Set(where string, opts map[string]any) {
	if *o == nil {
		*o = Options{}
	}
	current, ok := (*o)[where]
	if !ok {
		current = map[string]any{}
		(*o)[where] = current
	}
	for k, v := range opts {
		current[k] = v
	}
}

// Get returns the settings of plugin where, never nil.
func (o Options) Get(where string) map[string]any {
	if v, ok := o[where]; ok {
		return v
	}
	return map[string]any{}
}

// String reads a setting as a string, falling back to def.
func (o Options) String(where, key, def string) string {
	v, ok := o.Get(where)[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Duration reads a setting given either as a duration string ("1.5s") or as
// a number of seconds.
func (o Options) Duration(where, key string, def time.Duration) time.Duration {
	switch v := o.Get(where)[key].(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v * float64(time.Second))
	case time.Duration:
		return v
	}
	return def
}
