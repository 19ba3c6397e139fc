package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/itemstr"
)

// ExitNoMatch is returned by compare when the item does not satisfy the descriptor
const ExitNoMatch = 1

var errNoMatch = errors.New("no match")

func newCompareCmd(root *rootOptions) *cobra.Command {
	var (
		id, variant, amount int
		material, name      string
		ignoreName          bool
	)

	cmd := &cobra.Command{
		Use:   "compare <descriptor>",
		Short: "Check whether an item satisfies a descriptor",
		Long: `Check whether an item satisfies a descriptor. The item is given by
--material or --id plus --variant, --amount and --name. Exits with status 1
when the item does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, reg, err := root.newEngine()
			if err != nil {
				return err
			}

			item := &domain.ItemStack{Variant: variant, Amount: amount, DisplayName: itemstr.DisplayName(name)}
			switch {
			case material != "":
				m, ok := reg.MaterialByName(material)
				if !ok {
					return domain.ErrMaterialNotFound
				}
				item.Material = m
			default:
				item.Material = domain.Material{ID: id}
			}

			var matches bool
			if ignoreName {
				matches = engine.CompareItemIgnoringName(item, args[0])
			} else {
				matches = engine.CompareItem(item, args[0])
			}

			if !matches {
				printf(cmd.OutOrStdout(), "%s\n", noMatchStyle.Render("no match"))
				return &ExitError{Code: ExitNoMatch}
			}
			printf(cmd.OutOrStdout(), "%s\n", matchStyle.Render("match"))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&id, "id", 0, "material id of the item")
	f.StringVar(&material, "material", "", "material name of the item (overrides --id)")
	f.IntVar(&variant, "variant", 0, "variant (data value) of the item")
	f.IntVar(&amount, "amount", 1, "number of items in the stack")
	f.StringVar(&name, "name", "", "display name of the item, underscores become spaces")
	f.BoolVar(&ignoreName, "ignore-name", false, "do not compare display names")
	return cmd
}
