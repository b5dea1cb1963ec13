package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-ao-raytracer/pkg/loaders"
	"github.com/df07/go-ao-raytracer/pkg/renderer"
	"github.com/df07/go-ao-raytracer/pkg/scene"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Config holds the command line options
type Config struct {
	SceneType  string
	Width      int
	Height     int
	AOSamples  int
	MaxDepth   int
	NumWorkers int
	Seed       int64
	MeshPath   string
	OutputDir  string
}

func main() {
	config := parseFlags()
	if config == nil {
		return
	}

	if err := run(config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags, returning nil if help was shown
func parseFlags() *Config {
	config := &Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene name: "+strings.Join(scene.Names(), ", "))
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&config.AOSamples, "samples", 0, "Ambient occlusion rays per shading point (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum reflection depth (0 = scene default)")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&config.Seed, "seed", 0, "Random seed for reproducible output (0 = random)")
	flag.StringVar(&config.MeshPath, "mesh", scene.DefaultMeshPath, "OBJ file for the mesh scene")
	flag.StringVar(&config.OutputDir, "output", "output", "Directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return nil
	}
	return config
}

func showHelp() {
	fmt.Println("Ambient Occlusion Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-8s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// createScene builds the named scene with the mesh options from the command line
func createScene(config *Config) (*scene.Scene, error) {
	return scene.Create(config.SceneType, scene.Options{
		MeshPath: config.MeshPath,
		Seed:     config.Seed,
	})
}

// renderConfig applies the command line overrides to the scene's settings
func renderConfig(s *scene.Scene, config *Config) renderer.Config {
	return renderer.MergeConfig(s.Config, renderer.Config{
		Width:      config.Width,
		Height:     config.Height,
		AOSamples:  config.AOSamples,
		MaxDepth:   config.MaxDepth,
		NumWorkers: config.NumWorkers,
		Seed:       config.Seed,
	})
}

func run(config *Config) error {
	fmt.Println("Starting Ambient Occlusion Raytracer...")
	printSystemInfo()

	selectedScene, err := createScene(config)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s scene (%d primitives)\n", config.SceneType, selectedScene.GetPrimitiveCount())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := renderer.NewRenderer(selectedScene, renderConfig(selectedScene, config), renderer.NewDefaultLogger())

	startTime := time.Now()
	img, stats, err := r.Render(ctx)
	if err != nil {
		return err
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Rays: %d primary, %d reflection, %d ambient occlusion (%.2f Mrays/s)\n",
		stats.PrimaryRays, stats.ReflectionRays, stats.AORays,
		float64(stats.TotalRays())/renderTime.Seconds()/1e6)
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(config.OutputDir, config.SceneType, fmt.Sprintf("render_%s.png", timestamp))
	if err := loaders.SavePNG(filename, img); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// printSystemInfo reports the host the render runs on
func printSystemInfo() {
	model := "unknown CPU"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	}
	fmt.Printf("CPU: %s, %d logical cores\n", model, renderer.DefaultNumWorkers())

	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("Memory: %.1f GiB total, %.1f GiB available\n",
			float64(vm.Total)/(1<<30), float64(vm.Available)/(1<<30))
	}
}
