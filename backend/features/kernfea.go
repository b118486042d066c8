package features

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/felipesanches/fontc/core/coords"
	"github.com/felipesanches/fontc/ir"
)

// generatedKerningHeader opens every synthesized kern fragment, so readers of
// merged feature source can tell machine-generated text from authored text.
const generatedKerningHeader = "\n\n# fontc generated kerning\n\n"

// CreateKerningFea synthesizes a single variable fea fragment describing the
// kerning for the entire variation space.
//
// Every kern is emitted with a value for every location any kerning is
// specified at; a pair missing a value at one of those locations gets a
// literal 0 rather than an interpolated fallback. Output is deterministic:
// groups and pairs follow the IR's insertion order, locations follow the
// canonical location order.
func CreateKerningFea(kerning *ir.Kerning) (string, error) {
	// Every kern must be defined at these locations. For human readability
	// lets order things consistently.
	locations := treeset.NewWith(func(a, b interface{}) int {
		return a.(coords.Location).Compare(b.(coords.Location))
	})
	kerning.EachKern(func(_ ir.KernPair, values *coords.LocationValues) {
		for _, loc := range values.Locations() {
			locations.Add(loc)
		}
	})
	tracer().Debugf("%d locations have kerning", locations.Size())

	var fea strings.Builder
	fea.Grow(8192)
	fea.WriteString(generatedKerningHeader)

	if kerning.IsEmpty() {
		return fea.String(), nil
	}

	// 1) class declarations, @classname = [glyph1 glyph2 glyph3];
	kerning.EachGroup(func(name string, members []ir.GlyphName) {
		fea.WriteByte('@')
		fea.WriteString(name)
		fea.WriteString(" = [")
		fea.WriteString(strings.Join(members, " "))
		fea.WriteString("];\n")
	})
	fea.WriteString("\n\n")

	// 2) pair positioning; many kerns share a location string, so the string
	// edition is built once per distinct location
	posStrings := make(map[string]string, locations.Size())
	locationString := func(loc coords.Location) string {
		key := loc.String()
		if s, ok := posStrings[key]; ok {
			return s
		}
		var b strings.Builder
		first := true
		loc.Each(func(tag coords.Tag, c coords.NormalizedCoord) {
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteString(tag.String())
			b.WriteByte('=')
			b.WriteString(c.String())
			b.WriteByte('n') // n marks a normalized coordinate
		})
		posStrings[key] = b.String()
		return b.String()
	}

	fea.WriteString("feature kern {\n")
	kerning.EachKern(func(pair ir.KernPair, values *coords.LocationValues) {
		fea.WriteString("  ")
		if enumerated(pair.Side1, pair.Side2) {
			fea.WriteString("enum ")
		}
		fea.WriteString("pos ")
		writeParticipant(&fea, pair.Side1)
		fea.WriteByte(' ')
		writeParticipant(&fea, pair.Side2)
		fea.WriteString(" (")
		first := true
		locations.Each(func(_ int, v interface{}) {
			loc := v.(coords.Location)
			adjustment, ok := values.Value(loc)
			if !ok {
				adjustment = 0
			}
			if !first {
				fea.WriteByte(' ')
			}
			first = false
			fea.WriteString(locationString(loc))
			fea.WriteByte(':')
			fea.WriteString(strconv.FormatFloat(adjustment, 'f', -1, 64))
		})
		fea.WriteString(");\n")
	})
	fea.WriteString("} kern;\n")

	return fea.String(), nil
}

// enumerated tells if a pair must be expanded to explicit glyph-glyph
// exceptions: glyph↔class and class↔glyph pairs are interpreted as class
// exceptions and carry the 'enum' keyword.
func enumerated(kp1, kp2 ir.KernParticipant) bool {
	return kp1.IsGroup != kp2.IsGroup
}

func writeParticipant(fea *strings.Builder, kp ir.KernParticipant) {
	if kp.IsGroup {
		fea.WriteByte('@')
	}
	fea.WriteString(kp.Name)
}
