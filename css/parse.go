// Package css converts between CSS transform lists, such as
// "translate(10px, 20px) rotate(45deg)", and gfx.Transform.
package css

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tdewolff/parse/v2"
	csslex "github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/akmonengine/xform/gfx"
)

var (
	ErrSyntax          = errors.New("css: syntax error")
	ErrUnknownFunction = errors.New("css: unknown transform function")
	ErrArgumentCount   = errors.New("css: wrong number of arguments")
	ErrUnit            = errors.New("css: invalid unit")
)

type value struct {
	number float64
	unit   string
}

// Parse builds the transform described by a CSS transform list. Functions
// are applied left to right, so the rightmost function is the first one
// applied to a point. The empty string and "none" give the identity.
func Parse(s string) (gfx.Transform, error) {
	t := gfx.Identity()
	l := csslex.NewLexer(parse.NewInputString(s))

	seenNone, seenFunction := false, false
	for {
		tt, data := l.Next()
		switch tt {
		case csslex.ErrorToken:
			if errors.Is(l.Err(), io.EOF) {
				return t, nil
			}
			return gfx.Identity(), fmt.Errorf("%w: invalid token", ErrSyntax)
		case csslex.WhitespaceToken, csslex.CommentToken:
		case csslex.IdentToken:
			if !strings.EqualFold(string(data), "none") || seenNone || seenFunction {
				return gfx.Identity(), fmt.Errorf("%w: unexpected %q", ErrSyntax, data)
			}
			seenNone = true
		case csslex.FunctionToken:
			if seenNone {
				return gfx.Identity(), fmt.Errorf("%w: function after none", ErrSyntax)
			}
			seenFunction = true

			name := strings.ToLower(strings.TrimSuffix(string(data), "("))
			args, err := readArguments(l)
			if err != nil {
				return gfx.Identity(), fmt.Errorf("%s: %w", name, err)
			}
			if err := apply(&t, name, args); err != nil {
				return gfx.Identity(), fmt.Errorf("%s: %w", name, err)
			}
		default:
			return gfx.Identity(), fmt.Errorf("%w: unexpected %q", ErrSyntax, data)
		}
	}
}

// readArguments consumes tokens up to and including the closing parenthesis
// of a function.
func readArguments(l *csslex.Lexer) ([]value, error) {
	var args []value
	expectValue := true
	for {
		tt, data := l.Next()
		switch tt {
		case csslex.WhitespaceToken, csslex.CommentToken:
		case csslex.NumberToken, csslex.DimensionToken, csslex.PercentageToken:
			if !expectValue {
				return nil, fmt.Errorf("%w: missing comma before %q", ErrSyntax, data)
			}
			v, err := parseValue(data)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			expectValue = false
		case csslex.CommaToken:
			if expectValue {
				return nil, fmt.Errorf("%w: unexpected comma", ErrSyntax)
			}
			expectValue = true
		case csslex.RightParenthesisToken:
			if expectValue && len(args) > 0 {
				return nil, fmt.Errorf("%w: trailing comma", ErrSyntax)
			}
			return args, nil
		case csslex.ErrorToken:
			return nil, fmt.Errorf("%w: unterminated function", ErrSyntax)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, data)
		}
	}
}

func parseValue(data []byte) (value, error) {
	number, n := strconv.ParseFloat(data)
	if n == 0 {
		return value{}, fmt.Errorf("%w: invalid number %q", ErrSyntax, data)
	}
	return value{number: number, unit: strings.ToLower(string(data[n:]))}, nil
}

// angle returns v in degrees.
func (v value) angle() (float64, error) {
	switch v.unit {
	case "deg":
		return v.number, nil
	case "rad":
		return mgl64.RadToDeg(v.number), nil
	case "grad":
		return v.number * 0.9, nil
	case "turn":
		return v.number * 360, nil
	case "":
		if v.number == 0 {
			return 0, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not an angle", ErrUnit, v.unit)
}

func (v value) length() (float64, error) {
	switch v.unit {
	case "", "px":
		return v.number, nil
	}
	return 0, fmt.Errorf("%w: %q is not a length", ErrUnit, v.unit)
}

func (v value) scalar() (float64, error) {
	switch v.unit {
	case "":
		return v.number, nil
	case "%":
		return v.number / 100, nil
	}
	return 0, fmt.Errorf("%w: %q is not a number", ErrUnit, v.unit)
}

func convert(args []value, fn func(value) (float64, error)) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, err := fn(arg)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func checkCount(args []value, counts ...int) error {
	for _, c := range counts {
		if len(args) == c {
			return nil
		}
	}
	return fmt.Errorf("%w: got %d, want %v", ErrArgumentCount, len(args), counts)
}

func apply(t *gfx.Transform, name string, args []value) error {
	switch name {
	case "matrix":
		if err := checkCount(args, 6); err != nil {
			return err
		}
		m, err := convert(args, value.scalar)
		if err != nil {
			return err
		}
		t.PreconcatTransform(gfx.NewTransformFromRows(
			m[0], m[2], 0, m[4],
			m[1], m[3], 0, m[5],
			0, 0, 1, 0,
			0, 0, 0, 1,
		))

	case "matrix3d":
		if err := checkCount(args, 16); err != nil {
			return err
		}
		m, err := convert(args, value.scalar)
		if err != nil {
			return err
		}
		// CSS lists the entries column by column, like mathgl stores them.
		var columns mgl64.Mat4
		copy(columns[:], m)
		t.PreconcatTransform(gfx.NewTransform(columns))

	case "translate", "translatex", "translatey", "translatez", "translate3d":
		return applyTranslate(t, name, args)

	case "scale", "scalex", "scaley", "scalez", "scale3d":
		return applyScale(t, name, args)

	case "rotate", "rotatex", "rotatey", "rotatez":
		if err := checkCount(args, 1); err != nil {
			return err
		}
		degrees, err := args[0].angle()
		if err != nil {
			return err
		}
		switch name {
		case "rotatex":
			t.RotateAboutXAxis(degrees)
		case "rotatey":
			t.RotateAboutYAxis(degrees)
		default:
			t.RotateAboutZAxis(degrees)
		}

	case "rotate3d":
		if err := checkCount(args, 4); err != nil {
			return err
		}
		axis, err := convert(args[:3], value.scalar)
		if err != nil {
			return err
		}
		degrees, err := args[3].angle()
		if err != nil {
			return err
		}
		t.RotateAbout(mgl64.Vec3{axis[0], axis[1], axis[2]}, degrees)

	case "skew", "skewx", "skewy":
		return applySkew(t, name, args)

	case "perspective":
		if err := checkCount(args, 1); err != nil {
			return err
		}
		depth, err := args[0].length()
		if err != nil {
			return err
		}
		if depth < 0 || math.IsNaN(depth) {
			return fmt.Errorf("%w: negative depth", ErrSyntax)
		}
		t.ApplyPerspectiveDepth(depth)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}

	return nil
}

func applyTranslate(t *gfx.Transform, name string, args []value) error {
	counts := map[string][]int{
		"translate":   {1, 2},
		"translatex":  {1},
		"translatey":  {1},
		"translatez":  {1},
		"translate3d": {3},
	}
	if err := checkCount(args, counts[name]...); err != nil {
		return err
	}
	v, err := convert(args, value.length)
	if err != nil {
		return err
	}

	switch name {
	case "translate":
		if len(v) == 1 {
			v = append(v, 0)
		}
		t.Translate(v[0], v[1])
	case "translatex":
		t.Translate(v[0], 0)
	case "translatey":
		t.Translate(0, v[0])
	case "translatez":
		t.Translate3d(0, 0, v[0])
	case "translate3d":
		t.Translate3d(v[0], v[1], v[2])
	}
	return nil
}

func applyScale(t *gfx.Transform, name string, args []value) error {
	counts := map[string][]int{
		"scale":   {1, 2},
		"scalex":  {1},
		"scaley":  {1},
		"scalez":  {1},
		"scale3d": {3},
	}
	if err := checkCount(args, counts[name]...); err != nil {
		return err
	}
	v, err := convert(args, value.scalar)
	if err != nil {
		return err
	}

	switch name {
	case "scale":
		if len(v) == 1 {
			v = append(v, v[0])
		}
		t.Scale(v[0], v[1])
	case "scalex":
		t.Scale(v[0], 1)
	case "scaley":
		t.Scale(1, v[0])
	case "scalez":
		t.Scale3d(1, 1, v[0])
	case "scale3d":
		t.Scale3d(v[0], v[1], v[2])
	}
	return nil
}

func applySkew(t *gfx.Transform, name string, args []value) error {
	counts := map[string][]int{
		"skew":  {1, 2},
		"skewx": {1},
		"skewy": {1},
	}
	if err := checkCount(args, counts[name]...); err != nil {
		return err
	}
	v, err := convert(args, value.angle)
	if err != nil {
		return err
	}

	switch name {
	case "skew":
		// skew(ax, ay) is a single shear matrix, not skewX followed by skewY.
		ay := 0.0
		if len(v) == 2 {
			ay = v[1]
		}
		t.PreconcatTransform(gfx.NewTransformFromRows(
			1, math.Tan(mgl64.DegToRad(v[0])), 0, 0,
			math.Tan(mgl64.DegToRad(ay)), 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		))
	case "skewx":
		t.SkewX(v[0])
	case "skewy":
		t.SkewY(v[0])
	}
	return nil
}
