package config

import "glowsync/internal/lights"

// Static palettes per device class. Entry order matters: the matcher
// resolves exact distance ties to the earliest entry.

var bottomLightPalette = lights.Palette{
	{Name: "red", RGB: lights.Color{Red: 255, Green: 0, Blue: 0}},
	{Name: "green", RGB: lights.Color{Red: 0, Green: 128, Blue: 0}},
	{Name: "blue", RGB: lights.Color{Red: 0, Green: 0, Blue: 255}},
	{Name: "white", RGB: lights.Color{Red: 255, Green: 255, Blue: 255}},
	{Name: "orange", RGB: lights.Color{Red: 255, Green: 165, Blue: 0}},
	{Name: "light_orange", RGB: lights.Color{Red: 255, Green: 200, Blue: 100}},
	{Name: "dark_yellow", RGB: lights.Color{Red: 220, Green: 220, Blue: 1}},
	{Name: "yellow", RGB: lights.Color{Red: 255, Green: 255, Blue: 0}},
	{Name: "light_green", RGB: lights.Color{Red: 154, Green: 245, Blue: 154}},
	{Name: "cyan", RGB: lights.Color{Red: 0, Green: 255, Blue: 255}},
	{Name: "light_blue", RGB: lights.Color{Red: 112, Green: 184, Blue: 255}},
	{Name: "sky_blue", RGB: lights.Color{Red: 135, Green: 206, Blue: 235}},
	{Name: "light_purple", RGB: lights.Color{Red: 129, Green: 113, Blue: 213}},
	{Name: "purple", RGB: lights.Color{Red: 128, Green: 0, Blue: 128}},
	{Name: "dark_pink", RGB: lights.Color{Red: 221, Green: 67, Blue: 232}},
	{Name: "pink", RGB: lights.Color{Red: 225, Green: 159, Blue: 245}},
	{Name: "black", RGB: lights.Color{Red: 0, Green: 0, Blue: 0}},
}

var monitorBacklightPalette = lights.Palette{
	{Name: "red", RGB: lights.Color{Red: 255, Green: 0, Blue: 0}},
	{Name: "red_1", RGB: lights.Color{Red: 255, Green: 80, Blue: 0}},
	{Name: "red_2", RGB: lights.Color{Red: 221, Green: 255, Blue: 71}},
	{Name: "red_3", RGB: lights.Color{Red: 245, Green: 231, Blue: 122}},
	{Name: "red_4", RGB: lights.Color{Red: 255, Green: 20, Blue: 147}},
	{Name: "red_5", RGB: lights.Color{Red: 255, Green: 107, Blue: 147}},
	{Name: "yellow", RGB: lights.Color{Red: 230, Green: 250, Blue: 51}},
	{Name: "yellow_1", RGB: lights.Color{Red: 178, Green: 240, Blue: 140}},
	{Name: "yellow_2", RGB: lights.Color{Red: 255, Green: 255, Blue: 255}},
	{Name: "yellow_3", RGB: lights.Color{Red: 70, Green: 255, Blue: 0}},
	{Name: "yellow_4", RGB: lights.Color{Red: 133, Green: 222, Blue: 0}},
	{Name: "yellow_5", RGB: lights.Color{Red: 197, Green: 255, Blue: 38}},
	{Name: "green", RGB: lights.Color{Red: 0, Green: 128, Blue: 0}},
	{Name: "green_1", RGB: lights.Color{Red: 12, Green: 255, Blue: 255}},
	{Name: "green_2", RGB: lights.Color{Red: 124, Green: 255, Blue: 0}},
	{Name: "green_3", RGB: lights.Color{Red: 92, Green: 221, Blue: 255}},
	{Name: "green_4", RGB: lights.Color{Red: 0, Green: 172, Blue: 232}},
	{Name: "green_5", RGB: lights.Color{Red: 49, Green: 234, Blue: 0}},
	{Name: "blue", RGB: lights.Color{Red: 0, Green: 0, Blue: 255}},
	{Name: "blue_1", RGB: lights.Color{Red: 146, Green: 100, Blue: 230}},
	{Name: "blue_2", RGB: lights.Color{Red: 139, Green: 0, Blue: 212}},
	{Name: "blue_3", RGB: lights.Color{Red: 0, Green: 194, Blue: 237}},
	{Name: "blue_4", RGB: lights.Color{Red: 70, Green: 205, Blue: 255}},
	{Name: "blue_5", RGB: lights.Color{Red: 124, Green: 205, Blue: 254}},
	{Name: "black", RGB: lights.Color{Red: 0, Green: 0, Blue: 0}},
}

var palettesByDevice = map[string]lights.Palette{
	"monitor_backlight": monitorBacklightPalette,
	"bottom_light":      bottomLightPalette,
}

// PaletteFor returns the palette bound to a device name.
func PaletteFor(deviceName string) (lights.Palette, bool) {
	p, ok := palettesByDevice[deviceName]
	return p, ok
}
