package widget

import "strings"

// How the size computed by a layout compares to the size it was given.
type Compliance uint8

func (c *Compliance) Add(u Compliance) { *c |= u }
func (c Compliance) HasAny(u Compliance) bool { return c&u != 0 }

func (c Compliance) String() string {
	names := []string{
		"WidthCompliant", "WidthSmaller", "WidthLarger",
		"HeightCompliant", "HeightSmaller", "HeightLarger",
	}
	u := []string{}
	for i, s := range names {
		if c.HasAny(1 << i) {
			u = append(u, s)
		}
	}
	if len(u) == 0 {
		return "0"
	}
	return strings.Join(u, "|")
}

const (
	WidthCompliant Compliance = 1 << iota
	WidthSmaller
	WidthLarger
	HeightCompliant
	HeightSmaller
	HeightLarger
)

const FullyCompliant = WidthCompliant | HeightCompliant

func compareSize(before, after int, compliant, smaller, larger Compliance) Compliance {
	if after > before {
		return larger
	} else if after < before {
		return smaller
	}
	return compliant
}
