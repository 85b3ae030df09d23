package deck

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color literal cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// ErrUnknownRole is returned when a palette has no color for a role.
var ErrUnknownRole = errors.New("unknown color role")

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex returns the color as uppercase RRGGBB, the form used by DrawingML.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return "#" + c.Hex()
}

// MarshalYAML encodes the color as a hex string.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a hex string.
func (c *Color) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Role names the purpose of a color rather than the color itself.
type Role string

// Color roles used by the layout templates.
const (
	RoleBackground     Role = "background"
	RoleSurface        Role = "surface"
	RoleAccent         Role = "accent"
	RoleText           Role = "text"
	RoleMuted          Role = "muted"
	RoleSuccess        Role = "success"
	RoleSuccessSurface Role = "success-surface"
	RoleSuccessText    Role = "success-text"
	RoleDanger         Role = "danger"
	RoleDangerSurface  Role = "danger-surface"
	RoleGrowth         Role = "growth"
	RoleGrowthSurface  Role = "growth-surface"
)

// Roles lists every role a complete palette defines.
var Roles = []Role{
	RoleBackground, RoleSurface, RoleAccent, RoleText, RoleMuted,
	RoleSuccess, RoleSuccessSurface, RoleSuccessText,
	RoleDanger, RoleDangerSurface, RoleGrowth, RoleGrowthSurface,
}

// Palette maps color roles to colors.
type Palette map[Role]Color

// Lookup returns the color for role.
func (p Palette) Lookup(role Role) (Color, error) {
	c, ok := p[role]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return c, nil
}

// Merge returns a new palette with overrides applied on top of p.
func (p Palette) Merge(overrides Palette) Palette {
	merged := make(Palette, len(p)+len(overrides))
	for r, c := range p {
		merged[r] = c
	}
	for r, c := range overrides {
		merged[r] = c
	}
	return merged
}

// Validate reports the roles missing from the palette.
func (p Palette) Validate() error {
	var missing []string
	for _, r := range Roles {
		if _, ok := p[r]; !ok {
			missing = append(missing, string(r))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrUnknownRole, strings.Join(missing, ", "))
}

// Tone pairs a fill role with an outline role.
type Tone struct {
	Fill Role `yaml:"fill,omitempty"`
	Line Role `yaml:"line,omitempty"`
}

// Preset tones.
var (
	ToneDefault = Tone{Fill: RoleSurface, Line: RoleAccent}
	ToneDanger  = Tone{Fill: RoleDangerSurface, Line: RoleDanger}
	ToneGrowth  = Tone{Fill: RoleGrowthSurface, Line: RoleGrowth}
	ToneSuccess = Tone{Fill: RoleSuccessSurface, Line: RoleSuccess}
)

func (t Tone) orDefault() Tone {
	if t.Fill == "" {
		t.Fill = ToneDefault.Fill
	}
	if t.Line == "" {
		t.Line = ToneDefault.Line
	}
	return t
}
