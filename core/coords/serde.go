package coords

import (
	"gopkg.in/yaml.v3"

	"github.com/felipesanches/fontc/core"
)

// Converters and locations are persisted between build generations as part of
// the intermediate representation. The representations below are the stable
// wire forms; internal caches need not round-trip byte-identically, the
// effective mapping must.

type coordConverterRepr struct {
	DefaultIdx   int          `yaml:"default_idx"`
	UserToDesign [][2]float64 `yaml:"user_to_design"`
}

type locationPairRepr struct {
	Tag string  `yaml:"tag"`
	Pos float64 `yaml:"pos"`
}

// MarshalYAML serializes the converter as its example list plus default index.
func (conv *CoordConverter) MarshalYAML() (interface{}, error) {
	repr := coordConverterRepr{
		DefaultIdx:   conv.defaultIdx,
		UserToDesign: make([][2]float64, len(conv.examples)),
	}
	for i, ex := range conv.examples {
		repr.UserToDesign[i] = [2]float64{float64(ex.User), float64(ex.Design)}
	}
	return repr, nil
}

// UnmarshalYAML reconstructs a converter from its serialized example list.
func (conv *CoordConverter) UnmarshalYAML(node *yaml.Node) error {
	var repr coordConverterRepr
	if err := node.Decode(&repr); err != nil {
		return core.WrapError(err, core.EINVALID, "coordinate converter not decodable")
	}
	examples := make([]CoordMapping, len(repr.UserToDesign))
	for i, pair := range repr.UserToDesign {
		examples[i] = CoordMapping{User: UserCoord(pair[0]), Design: DesignCoord(pair[1])}
	}
	c, err := NewCoordConverter(examples, repr.DefaultIdx)
	if err != nil {
		return err
	}
	*conv = *c
	tracer().Debugf("deserialized coordinate converter with %d examples", len(examples))
	return nil
}

// MarshalYAML serializes the location as an ordered list of (tag, coordinate)
// pairs.
func (loc Location) MarshalYAML() (interface{}, error) {
	repr := make([]locationPairRepr, len(loc.axes))
	for i, a := range loc.axes {
		repr[i] = locationPairRepr{Tag: a.tag.String(), Pos: float64(a.coord)}
	}
	return repr, nil
}

// UnmarshalYAML reconstructs a location from its serialized pair list.
func (loc *Location) UnmarshalYAML(node *yaml.Node) error {
	var repr []locationPairRepr
	if err := node.Decode(&repr); err != nil {
		return core.WrapError(err, core.EINVALID, "location not decodable")
	}
	l := NewLocation()
	for _, pair := range repr {
		l = l.OnAxis(T(pair.Tag), NormalizedCoord(pair.Pos))
	}
	*loc = l
	return nil
}
