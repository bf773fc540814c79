package layoutdesc

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Description of a node and its childs.
//
// Sizes are [w,h] pairs, a zero component keeps the default value. Geometry is [x,y,w,h].
type Desc struct {
	Kind string `yaml:"kind"` // hlayout, vlayout, layered, view, rect, space
	Name string `yaml:"name"`

	Geometry []int `yaml:"geometry,omitempty"`
	Min      []int `yaml:"min,omitempty"`
	Max      []int `yaml:"max,omitempty"`

	// policies used by the parent layout
	Stretch     *uint    `yaml:"stretch,omitempty"`
	Positioning string   `yaml:"positioning,omitempty"` // start, end, center
	Extend      string   `yaml:"extend,omitempty"`      // full, percentage, fix, matchcontent
	Percentage  *float64 `yaml:"percentage,omitempty"`
	Layer       *Layer   `yaml:"layer,omitempty"` // child of a layered layout

	// layouts
	Stacking string  `yaml:"stacking,omitempty"` // start, end, center, expand
	Spacing  int     `yaml:"spacing,omitempty"`
	Padding  []int   `yaml:"padding,omitempty"` // left, right, top, bottom
	Children []*Desc `yaml:"children,omitempty"`

	// layered
	PaintAll  bool   `yaml:"paintall,omitempty"`
	InputMode string `yaml:"inputmode,omitempty"` // active, composite
	Active    *int   `yaml:"active,omitempty"`

	// view
	CanBreak bool  `yaml:"canbreak,omitempty"`
	Splitter bool  `yaml:"splitter,omitempty"`
	Layout   *Desc `yaml:"layout,omitempty"`

	Visible   *bool  `yaml:"visible,omitempty"`
	Sensitive *bool  `yaml:"sensitive,omitempty"`
	Color     string `yaml:"color,omitempty"` // rect, named color
}

type Layer struct {
	Expand *bool `yaml:"expand,omitempty"`
	Rect   []int `yaml:"rect,omitempty"` // relative to the layered layout, used if not expanded
}

//----------

func Parse(src []byte) (*Desc, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	d := &Desc{}
	if err := dec.Decode(d); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty description")
		}
		return nil, errors.Wrap(err, "parse")
	}
	return d, nil
}

func ParseFile(filename string) (*Desc, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	d, err := Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return d, nil
}

func (d *Desc) Marshal() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
