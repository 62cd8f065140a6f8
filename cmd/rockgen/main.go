// rockgen generates a procedural rock and writes it as OBJ, RMSH or a
// rendered preview without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/rockgen/internal/config"
	"github.com/Faultbox/rockgen/internal/engine/texture"
	"github.com/Faultbox/rockgen/internal/logger"
	"github.com/Faultbox/rockgen/internal/preview"
	"github.com/Faultbox/rockgen/pkg/formats"
	"github.com/Faultbox/rockgen/pkg/rock"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	switch {
	case len(args) == 0 || args[0] == "generate":
		err = cmdGenerate(cfg)
	case args[0] == "inspect":
		err = cmdInspect(cfg, args[1:])
	case args[0] == "save-config":
		err = cmdSaveConfig(cfg, args[1:])
	case args[0] == "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("rockgen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `rockgen - procedural rock generator

Usage:
  rockgen [flags] [command]

Commands:
  generate                 Build a rock and write the configured outputs (default)
  inspect <file.rmsh>      Print statistics of a saved mesh, rendering a preview if requested
  save-config [path]       Write the effective configuration as YAML

Examples:
  rockgen -seed 42 -planes 20 -out-obj rock.obj -out-preview rock.png
  rockgen -steps 5 -rock-width 2 -out-rmsh rock.rmsh
  rockgen -out-preview rock.webp inspect rock.rmsh

Flags:`)
	flag.PrintDefaults()
}

func cmdGenerate(cfg *config.Config) error {
	gen := rock.NewGenerator(cfg.Generation(), rock.WithLogger(logger.Named("rock")))
	vertices, indices, err := gen.Generate()
	if err != nil {
		return err
	}
	stats := gen.Stats()
	fmt.Println(stats)

	if path := cfg.Output.OBJPath; path != "" {
		name := fmt.Sprintf("rock_%d", cfg.Rock.Seed)
		if err := formats.WriteOBJFile(path, name, vertices, indices); err != nil {
			return fmt.Errorf("writing obj: %w", err)
		}
		logger.Info("obj written", zap.String("path", path))
	}

	if path := cfg.Output.RMSHPath; path != "" {
		if err := formats.WriteRMSHFile(path, vertices, indices); err != nil {
			return fmt.Errorf("writing rmsh: %w", err)
		}
		logger.Info("rmsh written", zap.String("path", path))
	}

	return writePreview(cfg, vertices, indices)
}

func cmdInspect(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: rockgen inspect <file.rmsh>")
	}

	mesh, err := formats.ParseRMSHFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: version %s\n", args[0], mesh.Version)
	fmt.Println(rock.MeasureMesh(mesh.Mesh()))

	return writePreview(cfg, mesh.Vertices, mesh.Indices)
}

func cmdSaveConfig(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return cfg.SaveTo(args[0])
	}
	return cfg.Save()
}

func writePreview(cfg *config.Config, vertices []rock.Vertex, indices []uint32) error {
	path := cfg.Output.PreviewPath
	if path == "" {
		return nil
	}

	opts, err := previewOptions(cfg)
	if err != nil {
		return err
	}
	img := preview.Render(vertices, indices, opts)
	if err := preview.Save(path, img); err != nil {
		return err
	}
	logger.Info("preview written", zap.String("path", path),
		zap.Int("width", opts.Width), zap.Int("height", opts.Height))
	return nil
}

// previewOptions maps the material and output sections onto the software
// renderer.
func previewOptions(cfg *config.Config) (preview.Options, error) {
	opts := preview.DefaultOptions()
	if cfg.Output.PreviewWidth > 0 && cfg.Output.PreviewHeight > 0 {
		opts.Width, opts.Height = cfg.Output.PreviewWidth, cfg.Output.PreviewHeight
	}
	if cfg.Output.Supersample > 0 {
		opts.Supersample = cfg.Output.Supersample
	}

	m := cfg.Material
	opts.BaseColor = m.DiffuseColor
	opts.Light.Ambient = m.AmbientIntensity
	opts.Light.Specular = m.SpecularIntensity
	if m.Shininess > 0 {
		opts.Light.Shininess = m.Shininess
	}

	if m.UseDiffuseMap {
		set, err := texture.LoadMaterial(m)
		if err != nil {
			return opts, err
		}
		opts.Texture = set.Diffuse
	}
	return opts, nil
}
