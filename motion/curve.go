// Package motion provides the additive procedural effects layered on top of
// path-driven positions: a vertical bob and a one-shot positional shake.
package motion

import (
	"fmt"
	"sort"

	"github.com/milk9111/pathrig/common"
	"gopkg.in/yaml.v3"
)

// Key is one sample of a Curve.
type Key struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// Curve is a piecewise-linear envelope over normalized time. Values outside
// the first and last key are held. The envelope does not need to be
// monotonic.
type Curve struct {
	keys []Key
}

func NewCurve(keys ...Key) Curve {
	sorted := append([]Key(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return Curve{keys: sorted}
}

// LinearFalloff ramps from 1 at the start to 0 at the end.
func LinearFalloff() Curve {
	return NewCurve(Key{Time: 0, Value: 1}, Key{Time: 1, Value: 0})
}

func (c Curve) Keys() []Key {
	return append([]Key(nil), c.keys...)
}

func (c Curve) Empty() bool {
	return len(c.keys) == 0
}

// Evaluate samples the curve at x. An empty curve evaluates to 0.
func (c Curve) Evaluate(x float64) float64 {
	n := len(c.keys)
	if n == 0 {
		return 0
	}
	if x <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if x >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}

	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > x })
	a, b := c.keys[i-1], c.keys[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	return common.Lerp(a.Value, b.Value, (x-a.Time)/span)
}

// UnmarshalYAML accepts either a list of {time, value} maps or a list of
// [time, value] pairs.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("curve must be a sequence")
	}

	keys := make([]Key, 0, len(value.Content))
	for _, item := range value.Content {
		switch item.Kind {
		case yaml.MappingNode:
			var k Key
			if err := item.Decode(&k); err != nil {
				return err
			}
			keys = append(keys, k)
		case yaml.SequenceNode:
			var pair []float64
			if err := item.Decode(&pair); err != nil {
				return err
			}
			if len(pair) != 2 {
				return fmt.Errorf("curve key must have 2 values, got %d", len(pair))
			}
			keys = append(keys, Key{Time: pair[0], Value: pair[1]})
		default:
			return fmt.Errorf("invalid curve key at line %d", item.Line)
		}
	}

	*c = NewCurve(keys...)
	return nil
}
