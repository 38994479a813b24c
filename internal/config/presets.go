package config

// Presets are canned transition settings per demo scene.
var Presets = map[string]map[string]*Config{
	"line": {
		"smooth": {
			Duration: 1.5, FrameRate: 30, Easing: "ease_in_out_cubic",
			Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		},
		"snappy": {
			Duration: 0.4, FrameRate: 60, Easing: "ease_out_quad",
			Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		},
		"slow": {
			Duration: 4.0, FrameRate: 24, Easing: "ease_in_out_sine",
			Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		},
	},
	"scatter": {
		"drift": {
			Duration: 2.0, FrameRate: 30, Easing: "ease_in_out_sine",
			Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		},
		"pop": {
			Duration: 0.6, FrameRate: 60, Easing: "ease_out_cubic",
			Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		},
	},
	"bar": {
		"grow": {
			Duration: 1.0, FrameRate: 30, Easing: "ease_in_out_quad",
			Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		},
		"steady": {
			Duration: 2.0, FrameRate: 30, Easing: "linear",
			Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		},
	},
}

func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	cfg, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	return names
}
