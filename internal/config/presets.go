package config

import "sort"

// View is a named camera setup. Presets only touch the camera and bounds.
type View struct {
	Bounds    float64
	Elevation float64
	Azimuth   float64
}

var Presets = map[string]View{
	"default": {Bounds: DefaultBounds, Elevation: DefaultElevation, Azimuth: DefaultAzimuth},
	"top":     {Bounds: DefaultBounds, Elevation: 90, Azimuth: -90},
	"side":    {Bounds: DefaultBounds, Elevation: 0, Azimuth: 0},
	"close":   {Bounds: 1000, Elevation: DefaultElevation, Azimuth: DefaultAzimuth},
	"wide":    {Bounds: 20000, Elevation: 30, Azimuth: 45},
}

// GetPreset returns a default config with the named view applied, or nil.
func GetPreset(name string) *Config {
	v, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	v.Apply(cfg)
	return cfg
}

func (v View) Apply(cfg *Config) {
	cfg.Bounds = v.Bounds
	cfg.Elevation = v.Elevation
	cfg.Azimuth = v.Azimuth
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
