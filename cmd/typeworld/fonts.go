package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/typeworld"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List the font catalog a compile would see",
	Long: `Runs font discovery with the configured search paths and prints every
catalog entry: index, family, style, backing file, and collection index.
Catalog indices are assigned in discovery order and are stable across runs
with no filesystem changes.`,
	Args: cobra.NoArgs,
	RunE: runFonts,
}

func runFonts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}

	opts := []typeworld.Option{
		typeworld.WithLogger(log),
		typeworld.WithFontDirs(cfg.Fonts.Paths...),
		typeworld.WithFontFiles(cfg.Fonts.Files...),
	}
	if cfg.Fonts.IgnoreSystem {
		opts = append(opts, typeworld.WithoutSystemFonts())
	}

	w := typeworld.NewWorld(cfg.Root, opts...)
	book := w.Book()
	for i, slot := range w.Catalog() {
		info, _ := book.Info(i)
		family := info.Family
		if family == "" {
			family = "(unnamed)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-32s %-16s %s#%d\n",
			i, family, info.Style, slot.Path(), slot.Index())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d fonts\n", book.Len())
	return nil
}
