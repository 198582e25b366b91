package config

var Presets = map[string]*Config{
	"sqrt2": {
		X: 2.0, Degree: 2, Steps: 10,
		Methods: []string{"dual", "shadow"},
	},
	"cbrt2": {
		X: 2.0, Degree: 3, Steps: 20,
		Methods: []string{"dual", "shadow"},
	},
	"pi": {
		X: 3.141592653589793, Degree: 2, Steps: 10,
		Methods: []string{"dual", "shadow", "finite"},
	},
	"large": {
		X: 1e6, Degree: 2, Steps: 30,
		Methods: []string{"dual", "shadow"},
	},
	"tiny": {
		X: 1e-6, Degree: 2, Steps: 40,
		Methods: []string{"dual", "shadow"},
	},
	"precision": {
		X: 2.0, Degree: 2, Steps: 60,
		Methods:    []string{"dual"},
		Precisions: []string{"single", "double", "quad", "big256", "big512"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
