package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The analysis engine returns metrics as JSON objects whose key order is
// meaningful for rendering (categories and comparison rows appear in payload
// order). encoding/json maps lose that order, so these types decode with a
// token walk that records keys as they appear.

// UnmarshalJSON decodes a category -> metrics object, preserving the key
// order of both levels.
func (m *MetricCategories) UnmarshalJSON(data []byte) error {
	m.Order = nil
	m.FieldOrder = make(map[string][]string)
	m.Values = make(map[string]map[string]any)

	keys, err := objectKeys(data)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	for _, category := range keys {
		inner, err := objectKeys(raw[category])
		if err != nil {
			return fmt.Errorf("metrics[%s]: %w", category, err)
		}
		var values map[string]any
		if err := json.Unmarshal(raw[category], &values); err != nil {
			return fmt.Errorf("metrics[%s]: %w", category, err)
		}
		m.FieldOrder[category] = inner
		m.Values[category] = values
	}

	m.Order = keys
	return nil
}

// MarshalJSON re-encodes categories in their recorded order, both levels.
func (m MetricCategories) MarshalJSON() ([]byte, error) {
	return marshalOrdered(m.Order, func(category string) (any, bool) {
		values, ok := m.Values[category]
		if !ok {
			return nil, false
		}
		inner, err := marshalOrdered(m.FieldOrder[category], func(metric string) (any, bool) {
			v, ok := values[metric]
			return v, ok
		})
		if err != nil {
			return nil, false
		}
		return json.RawMessage(inner), true
	})
}

// UnmarshalJSON decodes a metric -> comparison object, preserving key order.
func (c *OrderedMetricsComparison) UnmarshalJSON(data []byte) error {
	c.Order = nil
	c.Values = make(map[string]MetricComparison)

	keys, err := objectKeys(data)
	if err != nil {
		return fmt.Errorf("metrics_comparison: %w", err)
	}

	var raw map[string]MetricComparison
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("metrics_comparison: %w", err)
	}

	c.Order = keys
	c.Values = raw
	return nil
}

// MarshalJSON re-encodes comparisons in their recorded order.
func (c OrderedMetricsComparison) MarshalJSON() ([]byte, error) {
	return marshalOrdered(c.Order, func(key string) (any, bool) {
		v, ok := c.Values[key]
		return v, ok
	})
}

// objectKeys returns the top-level keys of a JSON object in document order.
func objectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		keys = append(keys, key)

		// Skip the value without decoding it.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func marshalOrdered(order []string, lookup func(string) (any, bool)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range order {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
