package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"

	"github.com/photark/go-raytracer/pkg/renderer"
	"github.com/photark/go-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'grid' or 'mesh'")
	meshPath := flag.String("mesh", "", "Model file for the mesh scene (.obj, .stl, .gltf, .glb)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (0 = from scene aspect ratio)")
	samples := flag.Int("samples", 100, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounces per sample")
	seed := flag.Int64("seed", 42, "Base random seed")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = all CPUs)")
	preview := flag.Bool("preview", false, "Also write a 256px-wide preview image")
	upload := flag.Bool("upload", false, "Upload the render to S3 (reads .env for credentials)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Material showcase: matte, metal and glass spheres over a ground plane")
		fmt.Println("  grid    - Grid of matte and mirror spheres lit from the center")
		fmt.Println("  mesh    - A model loaded with -mesh, staged on a ground plane")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting raytracer...")

	var (
		selectedScene *scene.Scene
		cameraConfig  renderer.CameraConfig
		err           error
	)

	switch *sceneType {
	case "grid":
		fmt.Println("Using sphere grid scene...")
		selectedScene, cameraConfig, err = scene.NewSphereGridScene()
	case "mesh":
		if *meshPath == "" {
			fmt.Println("The mesh scene needs a model file, pass one with -mesh")
			os.Exit(1)
		}
		fmt.Printf("Using mesh scene with %s...\n", *meshPath)
		selectedScene, cameraConfig, err = scene.NewMeshScene(*meshPath)
	case "default":
		fmt.Println("Using default scene...")
		selectedScene, cameraConfig, err = scene.NewDefaultScene()
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selectedScene, cameraConfig, err = scene.NewDefaultScene()
		*sceneType = "default" // Normalize the scene type for directory creation
	}
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	imgHeight := *height
	if imgHeight <= 0 {
		imgHeight = int(float64(*width) / cameraConfig.AspectRatio)
	} else {
		// An explicit height overrides the scene's suggested aspect ratio
		cameraConfig.AspectRatio = float64(*width) / float64(imgHeight)
	}

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		fmt.Printf("Error creating camera: %v\n", err)
		os.Exit(1)
	}

	config := renderer.Config{
		Width:           *width,
		Height:          imgHeight,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Seed:            *seed,
		NumWorkers:      *workers,
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, camera, config)

	startTime := time.Now()
	fb, err := raytracer.Render(context.Background())
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%d shapes, %d samples/pixel)\n",
		renderTime, selectedScene.ShapeCount(), *samples)

	img := fb.ToImage()

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	if err := writePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)

	if *preview {
		previewName := filepath.Join(outputDir, fmt.Sprintf("render_%s_preview.png", timestamp))
		small := resize.Resize(256, 0, img, resize.Bilinear)
		if err := writePNG(previewName, small); err != nil {
			fmt.Printf("Error saving preview PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview saved as %s\n", previewName)
	}

	if *upload {
		key := fmt.Sprintf("renders/%s/render_%s.png", *sceneType, timestamp)
		if err := publishPNG(context.Background(), filename, key); err != nil {
			fmt.Printf("Error uploading render: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Render uploaded as %s\n", key)
	}
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
