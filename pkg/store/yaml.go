package store

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

// decodeYAML walks the node tree rather than decoding into a map so that
// measurement order survives.
func decodeYAML(raw []byte) (*data.Collection, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level must be a mapping", root.Line)
	}

	c := data.NewCollection()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, seriesNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value
		if _, _, err := c.Add(key); err != nil {
			return nil, fmt.Errorf("line %d: %w", keyNode.Line, err)
		}
		if seriesNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: measurement %q must be a mapping", seriesNode.Line, key)
		}
		for j := 0; j+1 < len(seriesNode.Content); j += 2 {
			dateNode, valueNode := seriesNode.Content[j], seriesNode.Content[j+1]
			d, err := data.ParseDate(dateNode.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", dateNode.Line, err)
			}
			if valueNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: value for %s must be a number", valueNode.Line, d)
			}
			var v float64
			if err := valueNode.Decode(&v); err != nil {
				return nil, fmt.Errorf("line %d: %w", valueNode.Line, err)
			}
			if err := c.Record(key, d, v); err != nil {
				return nil, fmt.Errorf("line %d: %w", valueNode.Line, err)
			}
		}
	}
	return c, nil
}

// encodeYAML builds the node tree explicitly to control key order and to
// keep dates quoted as strings.
func encodeYAML(c *data.Collection) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range c.Keys() {
		seriesNode := &yaml.Node{Kind: yaml.MappingNode}
		s, _ := c.Series(key)
		for _, p := range s.Points() {
			valueNode := &yaml.Node{}
			if err := valueNode.Encode(p.Value); err != nil {
				return nil, fmt.Errorf("measurement %q on %s: %w", key, p.Date, err)
			}
			seriesNode.Content = append(seriesNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: p.Date.String()},
				valueNode,
			)
		}
		if len(seriesNode.Content) == 0 {
			seriesNode.Style = yaml.FlowStyle
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			seriesNode,
		)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
