package css

import (
	"strconv"
	"strings"

	"github.com/akmonengine/xform/gfx"
)

// Format renders t as the shortest of "none", translate/scale functions,
// matrix() or matrix3d(). Parse(Format(t)) reproduces t.
func Format(t gfx.Transform) string {
	switch {
	case t.Equal(gfx.Identity()):
		return "none"
	case t.IsScaleOrTranslation():
		return formatScaleTranslate(t)
	case t.IsFlat() && !t.HasPerspective():
		return function("matrix", "",
			t.At(0, 0), t.At(1, 0),
			t.At(0, 1), t.At(1, 1),
			t.At(0, 3), t.At(1, 3))
	}

	m := t.Matrix()
	return function("matrix3d", "", m[:]...)
}

func formatScaleTranslate(t gfx.Transform) string {
	var parts []string

	tx, ty, tz := t.At(0, 3), t.At(1, 3), t.At(2, 3)
	switch {
	case tz != 0:
		parts = append(parts, function("translate3d", "px", tx, ty, tz))
	case tx != 0 || ty != 0:
		parts = append(parts, function("translate", "px", tx, ty))
	}

	sx, sy, sz := t.At(0, 0), t.At(1, 1), t.At(2, 2)
	switch {
	case sz != 1:
		parts = append(parts, function("scale3d", "", sx, sy, sz))
	case sx != 1 || sy != 1:
		parts = append(parts, function("scale", "", sx, sy))
	}

	return strings.Join(parts, " ")
}

func function(name, unit string, args ...float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(arg, 'g', -1, 64))
		if arg != 0 {
			sb.WriteString(unit)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
