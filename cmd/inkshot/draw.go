package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/inkshot/internal/shape"
	"github.com/example/inkshot/internal/theme"
)

// drawSpecs collects repeated -draw flags.
type drawSpecs []string

func (d *drawSpecs) String() string { return strings.Join(*d, "; ") }

func (d *drawSpecs) Set(v string) error {
	*d = append(*d, v)
	return nil
}

func parseColor(s string) (shape.Color, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return 0, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return shape.RGBA(c.R, c.G, c.B, c.A), nil
	}
	c, err := theme.ParseHex(spec)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	// ParseHex fields are straight alpha.
	return shape.RGBA(c.R, c.G, c.B, c.A), nil
}

// parseDrawSpec builds a committed shape from a spec such as
// "rect 0 0 10 10 fill color=blue".
func parseDrawSpec(spec string, st shape.Style) (shape.Shape, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty draw spec")
	}
	kind, err := shape.ParseKind(fields[0])
	if err != nil {
		return nil, err
	}

	var nums []float64
	for _, f := range fields[1:] {
		switch {
		case f == "fill" || f == "filled":
			st.Filled = true
		case strings.HasPrefix(f, "color="):
			c, err := parseColor(strings.TrimPrefix(f, "color="))
			if err != nil {
				return nil, err
			}
			st.Color = c
		case strings.HasPrefix(f, "width="):
			w, err := strconv.ParseFloat(strings.TrimPrefix(f, "width="), 64)
			if err != nil || w <= 0 {
				return nil, fmt.Errorf("invalid width in %q", spec)
			}
			st.Thickness = w
		default:
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid number %q", kind, f)
			}
			nums = append(nums, v)
		}
	}

	switch kind {
	case shape.Circle:
		if len(nums) != 3 {
			return nil, fmt.Errorf("circle requires CX CY R")
		}
		c := shape.Pt(nums[0], nums[1])
		s := shape.New(kind, c, st)
		s.Update(c.Add(shape.Pt(nums[2], 0)))
		return s, nil
	case shape.Freeform:
		if len(nums) < 2 || len(nums)%2 != 0 {
			return nil, fmt.Errorf("freeform requires coordinate pairs")
		}
		s := shape.New(kind, shape.Pt(nums[0], nums[1]), st)
		for i := 2; i < len(nums); i += 2 {
			s.Update(shape.Pt(nums[i], nums[i+1]))
		}
		return s, nil
	default:
		if len(nums) != 4 {
			return nil, fmt.Errorf("%s requires X0 Y0 X1 Y1", kind)
		}
		s := shape.New(kind, shape.Pt(nums[0], nums[1]), st)
		s.Update(shape.Pt(nums[2], nums[3]))
		return s, nil
	}
}

func parseDrawSpecs(specs []string, st shape.Style) ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(specs))
	for _, spec := range specs {
		s, err := parseDrawSpec(spec, st)
		if err != nil {
			return nil, fmt.Errorf("-draw %q: %w", spec, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}
