package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/tokenkit/internal/confirm"
	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	"github.com/alexisbeaulieu97/tokenkit/internal/style"
)

// Tokens are the typed tokens of a control after fallback. Only the fields of
// the control's family are meaningful.
type Tokens struct {
	Family         style.Family
	Color          palette.Color
	Variant        style.Variant
	CompactVariant style.CompactVariant
	Size           style.Size
	CompactSize    style.CompactSize
	Radius         style.Radius
}

// Tokens parses the token fields of c against pal. Unknown values fall back
// to their defaults; each fallback is reported as an error naming the field.
func (c Control) Tokens(pal *palette.Palette) (Tokens, []error) {
	var (
		out  Tokens
		errs []error
		err  error
	)
	note := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	out.Family = style.FamilyButton
	if c.Family != "" {
		out.Family, err = style.ParseFamily(c.Family)
		note("family", err)
	}

	if out.Family == style.FamilyCompact {
		out.CompactVariant = style.CompactDefault
		if c.Variant != "" {
			out.CompactVariant, err = style.ParseCompactVariant(c.Variant)
			note("variant", err)
		}
		out.CompactSize = style.CompactSizeDefault
		if c.Size != "" {
			out.CompactSize, err = style.ParseCompactSize(c.Size)
			note("size", err)
		}
		return out, errs
	}

	out.Color, err = style.ParseColor(out.Family, orDefault(c.Color, defaultColor(out.Family)), pal)
	note("color", err)

	out.Variant, err = style.ParseVariant(out.Family, orDefault(c.Variant, string(style.Outline)))
	note("variant", err)

	out.Size = style.SizeMD
	if c.Size != "" {
		out.Size, err = style.ParseSize(c.Size)
		note("size", err)
	}

	fallbackRadius := style.RadiusMD
	if out.Family == style.FamilyInput {
		fallbackRadius = style.RadiusDefault
	}
	out.Radius = fallbackRadius
	if c.Radius != "" {
		out.Radius, err = style.ParseRadius(c.Radius, fallbackRadius)
		note("radius", err)
	}

	return out, errs
}

// Request returns the confirmation request of c, or nil.
func (c Control) Request(onCancel func()) *confirm.Request {
	if c.Confirm == nil {
		return nil
	}
	return &confirm.Request{
		Title:       c.Confirm.Title,
		Message:     c.Confirm.Message,
		ConfirmText: c.Confirm.ConfirmText,
		CancelText:  c.Confirm.CancelText,
		OnCancel:    onCancel,
	}
}

// Lint reports every token fallback in cfg, prefixed with the control path.
func Lint(cfg *Config, pal *palette.Palette) []error {
	var out []error
	for i, c := range cfg.Controls {
		_, errs := c.Tokens(pal)
		for _, err := range errs {
			out = append(out, fmt.Errorf("controls[%d] (%s).%w", i, c.ID, err))
		}
	}
	return out
}

func defaultColor(family style.Family) string {
	if family == style.FamilyInput {
		return string(palette.Gray)
	}
	return string(palette.Blue)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
