package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/itemstr"
)

type parseResult struct {
	Descriptor itemstr.Descriptor `json:"descriptor"`
	Item       *domain.ItemStack  `json:"item"`
}

func newParseCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <descriptor>",
		Short: "Parse a descriptor and build one item from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := root.newEngine()
			if err != nil {
				return err
			}
			raw := args[0]

			d, ok := engine.ParseDescriptor(raw)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrInvalidDescriptor, raw)
			}
			if !d.Resolved() {
				return fmt.Errorf("%w: id %d", domain.ErrMaterialNotFound, d.MaterialID)
			}
			item, ok := engine.Parse(raw)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrInvalidDescriptor, raw)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(parseResult{Descriptor: d, Item: item})
			}
			printDescriptor(out, d)
			field(out, "item", describeStack(item))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the descriptor and item as JSON")
	return cmd
}

func printDescriptor(w io.Writer, d itemstr.Descriptor) {
	field(w, "material", fmt.Sprintf("%s (%d)", d.Material.Name, d.MaterialID))
	if d.HasVariant() {
		field(w, "variant", strconv.Itoa(d.Variant))
	} else {
		field(w, "variant", "any")
	}
	if d.Quantity.Present {
		field(w, "quantity", d.Quantity.String())
	}
	if d.HasName() {
		field(w, "name", d.DisplayName)
	}
	for _, e := range d.Enchantments {
		if e.Level.Present {
			field(w, "enchant", e.Name+" "+e.Level.String())
		} else {
			field(w, "enchant", e.Name)
		}
	}
}

// describeStack renders a stack on one line, e.g. "3 x IRON_SWORD:2 'Blade' [SHARPNESS 3]"
func describeStack(s *domain.ItemStack) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d x %s", s.Amount, s.Material.Name)
	if s.Variant != 0 {
		fmt.Fprintf(&sb, ":%d", s.Variant)
	}
	if s.HasDisplayName() {
		fmt.Fprintf(&sb, " '%s'", s.DisplayName)
	}
	if len(s.Enchantments) > 0 {
		parts := make([]string, 0, len(s.Enchantments))
		for _, el := range s.Enchantments {
			parts = append(parts, fmt.Sprintf("%s %d", el.Enchantment.Name, el.Level))
		}
		fmt.Fprintf(&sb, " [%s]", strings.Join(parts, ", "))
	}
	if s.Color != nil {
		fmt.Fprintf(&sb, " #%02X%02X%02X", s.Color.R, s.Color.G, s.Color.B)
	}
	return sb.String()
}
