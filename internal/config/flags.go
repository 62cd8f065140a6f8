package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSeed       = flag.Int64("seed", 0, "Plane selection seed (0 keeps the configured seed)")
	flagSteps      = flag.Int("steps", -1, "Icosphere subdivision steps")
	flagPlanes     = flag.Int("planes", -1, "Number of faceting planes")
	flagRockWidth  = flag.Float64("rock-width", 0, "Ellipsoid radius along X")
	flagRockHeight = flag.Float64("rock-height", 0, "Ellipsoid radius along Y")
	flagRockDepth  = flag.Float64("rock-depth", 0, "Ellipsoid radius along Z")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagOutOBJ     = flag.String("out-obj", "", "Write the mesh as Wavefront OBJ")
	flagOutRMSH    = flag.String("out-rmsh", "", "Write the mesh as RMSH")
	flagOutPreview = flag.String("out-preview", "", "Render a preview image (.png or .webp)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Rock.Seed = *flagSeed
	}
	if *flagSteps >= 0 {
		cfg.Rock.Steps = *flagSteps
	}
	if *flagPlanes >= 0 {
		cfg.Rock.Planes = *flagPlanes
	}
	if *flagRockWidth > 0 {
		cfg.Rock.Width = float32(*flagRockWidth)
	}
	if *flagRockHeight > 0 {
		cfg.Rock.Height = float32(*flagRockHeight)
	}
	if *flagRockDepth > 0 {
		cfg.Rock.Depth = float32(*flagRockDepth)
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagOutOBJ != "" {
		cfg.Output.OBJPath = *flagOutOBJ
	}
	if *flagOutRMSH != "" {
		cfg.Output.RMSHPath = *flagOutRMSH
	}
	if *flagOutPreview != "" {
		cfg.Output.PreviewPath = *flagOutPreview
	}
}
