package config

var presets = map[string]*Config{
	"subsonic": {
		Mach: 0.5, Temperature: 300, EtaMax: 10, N: 50, MaxIter: 40,
		TolProfile: 1e-6, TolBC: 1e-6,
		Guess: Guess{Alpha: 0.5, Beta: 1.05},
	},
	"sonic": {
		Mach: 1.0, Temperature: 300, EtaMax: 10, N: 50, MaxIter: 40,
		TolProfile: 1e-6, TolBC: 1e-6,
		Guess: Guess{Alpha: 0.5, Beta: 1.2},
	},
	"supersonic": {
		Mach: 2.0, Temperature: 300, EtaMax: 10, N: 50, MaxIter: 40,
		TolProfile: 1e-6, TolBC: 1e-6,
		Guess: Guess{Alpha: 0.5, Beta: 1.7},
	},
	// Higher Mach thickens the layer; push the outer bound and grid out.
	"hypersonic": {
		Mach: 4.0, Temperature: 220, EtaMax: 14, N: 70, MaxIter: 60,
		TolProfile: 1e-6, TolBC: 1e-6,
		Guess: Guess{Alpha: 0.6, Beta: 3.5},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
