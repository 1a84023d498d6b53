package main

import (
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"glowsync/internal/config"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List configured devices, their vocabularies and palettes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		descriptors, err := config.LoadDescriptors(cfg.DevicesFile)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		if isatty.IsTerminal(os.Stdout.Fd()) {
			t.SetStyle(table.StyleColoredBright)
		}
		t.AppendHeader(table.Row{"Device", "Commands", "Max Brightness", "Palette"})

		for _, d := range descriptors {
			commands := make([]string, 0, len(d.CommandMapping))
			for command := range d.CommandMapping {
				commands = append(commands, command)
			}
			sort.Strings(commands)

			paletteSummary := "(none)"
			if palette, ok := config.PaletteFor(d.DeviceName); ok {
				names := make([]string, 0, len(palette))
				for _, e := range palette {
					names = append(names, e.Name)
				}
				paletteSummary = strings.Join(names, ", ")
			}

			t.AppendRow(table.Row{
				d.DeviceName,
				strings.Join(commands, ", "),
				d.MaxBrightness,
				paletteSummary,
			})
		}

		t.Render()
		return nil
	},
}
