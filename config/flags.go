package config

import "flag"

// Flags holds the command line switches shared by the frontends
// Only flags given explicitly override the loaded configuration
type Flags struct {
	fs *flag.FlagSet

	ConfigPath string
	EnvPath    string
	DumpConfig bool

	seed        uint64
	bad         int
	good        int
	trees       int
	drops       int
	debug       bool
	mute        bool
	metricsAddr string
}

// RegisterFlags defines the switches on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "TOML config file, "+DefaultPath+" is used when present")
	fs.StringVar(&f.EnvPath, "env", "", "dotenv file with "+EnvPrefix+"* overrides")
	fs.BoolVar(&f.DumpConfig, "dump-config", false, "print the effective configuration as TOML and exit")

	fs.Uint64Var(&f.seed, "seed", 0, "RNG seed, 0 picks one from the clock")
	fs.IntVar(&f.bad, "bad", 0, "number of bad agents")
	fs.IntVar(&f.good, "good", 0, "number of good agents")
	fs.IntVar(&f.trees, "trees", 0, "number of obstacles")
	fs.IntVar(&f.drops, "drops", 0, "number of food drops")
	fs.BoolVar(&f.debug, "debug", false, "write debug logs to the log file")
	fs.BoolVar(&f.mute, "mute", false, "start with sound muted")
	fs.StringVar(&f.metricsAddr, "metrics", "", "serve Prometheus metrics on this address, e.g. :9090")
	return f
}

// Load reads the configuration named by the flags, then applies the explicit flags on top
func (f *Flags) Load() (*File, error) {
	cfg, err := Load(f.ConfigPath, f.EnvPath)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg)
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply overlays every flag that was set on the command line
func (f *Flags) Apply(cfg *File) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Game.Seed = f.seed
		case "bad":
			cfg.Game.BadAgents = f.bad
		case "good":
			cfg.Game.GoodAgents = f.good
		case "trees":
			cfg.Game.Obstacles = f.trees
		case "drops":
			cfg.Game.Drops = f.drops
		case "debug":
			cfg.Frontend.Debug = f.debug
		case "mute":
			cfg.Frontend.Mute = f.mute
		case "metrics":
			cfg.Frontend.MetricsAddr = f.metricsAddr
		}
	})
}
