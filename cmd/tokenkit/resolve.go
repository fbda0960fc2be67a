package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tokenkit/internal/config"
	"github.com/alexisbeaulieu97/tokenkit/internal/style"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
	"github.com/alexisbeaulieu97/tokenkit/internal/ui/components"
)

type resolveOptions struct {
	family  string
	color   string
	variant string
	size    string
	radius  string
	label   string
	icon    string
	output  string
	preview bool
}

// resolution is one resolved control style, as printed by resolve.
type resolution struct {
	Family    string          `json:"family" yaml:"family"`
	Color     string          `json:"color,omitempty" yaml:"color,omitempty"`
	Variant   string          `json:"variant" yaml:"variant"`
	Size      string          `json:"size" yaml:"size"`
	Mode      theme.Mode      `json:"mode" yaml:"mode"`
	Treatment style.Treatment `json:"treatment" yaml:"treatment"`
	Pressed   style.Delta     `json:"pressed" yaml:"pressed"`
	Underline bool            `json:"underline,omitempty" yaml:"underline,omitempty"`
	Geometry  style.SizeSpec  `json:"geometry" yaml:"geometry"`

	preview components.ContextualRenderable
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve tokens to a concrete treatment and geometry",
		Long: `Resolve a family, colour, variant and size to the colours and dimensions a
control renders with. Unknown tokens fall back to their defaults with a warning.
Without --mode both light and dark are printed.`,
		Example: `  tokenkit resolve --color red --variant outline --mode light
  tokenkit resolve --family compact --variant destructive -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.family, "family", "f", "", "Control family: button, input or compact")
	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "Semantic colour")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "Variant of the family")
	cmd.Flags().StringVarP(&opts.size, "size", "s", "", "Size token")
	cmd.Flags().StringVarP(&opts.radius, "radius", "r", "", "Radius token")
	cmd.Flags().StringVar(&opts.label, "label", "Button", "Label used by --preview")
	cmd.Flags().StringVar(&opts.icon, "icon", "", "Icon glyph used by --preview")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, yaml or json")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the control after the text output")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, opts resolveOptions) error {
	log, err := root.logger(cmd, "resolve")
	if err != nil {
		return err
	}
	modes, err := root.modes()
	if err != nil {
		return err
	}
	pal, err := root.loadPalette("")
	if err != nil {
		return err
	}

	ctl := config.Control{
		ID:      "cli",
		Label:   opts.label,
		Icon:    opts.icon,
		Family:  opts.family,
		Color:   opts.color,
		Variant: opts.variant,
		Size:    opts.size,
		Radius:  opts.radius,
	}
	tokens, issues := ctl.Tokens(pal)
	for _, issue := range issues {
		log.Warn(issue.Error())
	}

	engine := style.NewEngine(pal, 0)
	results := make([]resolution, 0, len(modes))
	for _, mode := range modes {
		results = append(results, resolve(engine, ctl, tokens, mode))
	}
	log.WithFields(map[string]any{"family": tokens.Family, "modes": len(modes)}).Debug("resolved")

	out := cmd.OutOrStdout()
	switch strings.ToLower(opts.output) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			writeResolution(out, r)
			if opts.preview {
				fmt.Fprintln(out, r.preview.ViewWithContext(components.ContextFor(r.Mode)))
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q: want text, yaml or json", opts.output)
	}
}

func resolve(engine *style.Engine, ctl config.Control, tokens config.Tokens, mode theme.Mode) resolution {
	r := resolution{Family: string(tokens.Family), Mode: mode}

	switch tokens.Family {
	case style.FamilyCompact:
		ct := engine.CompactTreatment(tokens.CompactVariant, mode)
		r.Variant = string(tokens.CompactVariant)
		r.Size = string(tokens.CompactSize)
		r.Treatment = ct.Treatment
		r.Pressed = ct.Pressed
		r.Underline = ct.Underline
		r.Geometry = style.ResolveCompactGeometry(tokens.CompactSize, ctl.Icon != "", ctl.Label != "")
		r.preview = components.NewCompactButton(ctl.Label, ct, r.Geometry).WithIcon(ctl.Icon)
		return r

	case style.FamilyInput:
		r.Treatment = engine.InputTreatment(tokens.Color, tokens.Variant, mode)
		r.Geometry = style.ResolveGeometry(tokens.Size)
		r.Geometry.Radius = style.ResolveRadius(tokens.Radius)
		r.preview = components.NewInput(ctl.Label, r.Treatment, r.Geometry)

	default:
		r.Treatment = engine.Treatment(tokens.Color, tokens.Variant, mode)
		r.Pressed = style.RichPressed
		r.Underline = tokens.Variant == style.Link
		r.Geometry = style.ResolveGeometry(tokens.Size)
		r.Geometry.Radius = style.ResolveRadius(tokens.Radius)
		r.preview = components.NewButton(ctl.Label, r.Treatment, r.Geometry).
			WithIcon(ctl.Icon).
			WithUnderline(r.Underline)
	}
	r.Color = string(tokens.Color)
	r.Variant = string(tokens.Variant)
	r.Size = string(tokens.Size)
	return r
}

func writeResolution(w io.Writer, r resolution) {
	name := strings.Join(lo.Compact([]string{r.Family, r.Color, r.Variant, r.Size}), " ")
	fmt.Fprintf(w, "%s (%s)\n", name, r.Mode)

	t := r.Treatment
	fmt.Fprintf(w, "  background    %s\n", t.Background)
	fmt.Fprintf(w, "  border        %s\n", t.Border)
	fmt.Fprintf(w, "  text          %s\n", t.Text)
	if t.Placeholder != "" {
		fmt.Fprintf(w, "  placeholder   %s\n", t.Placeholder)
	}
	fmt.Fprintf(w, "  border width  %d\n", t.BorderWidth)
	if r.Underline {
		fmt.Fprintf(w, "  underline     yes\n")
	}
	switch {
	case r.Pressed.Background != "":
		fmt.Fprintf(w, "  pressed       background %s\n", r.Pressed.Background)
	case r.Pressed.Opacity > 0:
		fmt.Fprintf(w, "  pressed       opacity %.2g\n", r.Pressed.Opacity)
	}

	g := r.Geometry
	fmt.Fprintf(w, "  geometry      height %d", g.Height)
	if g.Width > 0 {
		fmt.Fprintf(w, "  width %d", g.Width)
	}
	fmt.Fprintf(w, "  padding %d  font %d  icon %d", g.HorizontalPadding, g.FontSize, g.IconSize)
	if g.Gap > 0 {
		fmt.Fprintf(w, "  gap %d", g.Gap)
	}
	fmt.Fprintf(w, "  radius %d\n", g.Radius)
}
