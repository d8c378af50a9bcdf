package renderer

import (
	"context"
	"fmt"
	"image"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/material"
)

// tMinEpsilon is the minimum hit distance for secondary rays. It suppresses
// shadow acne from rays re-intersecting the surface they scattered off.
const tMinEpsilon = 1e-3

// Scene is what the renderer needs from the world: closest-hit queries and
// background radiance for escaped rays.
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	Background(ray core.Ray) core.Vec3
}

// Config controls image size and sampling
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int     // Scatter budget per path; 0 renders pure background
	Seed            int64   // Base seed for per-pixel sample streams
	NumWorkers      int     // 0 = GOMAXPROCS
	TileSize        int     // 0 = 64
	Gamma           float64 // 0 = 2.0
}

// DefaultConfig returns a reasonable starting configuration
func DefaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Raytracer renders a scene through a camera. The image is split into tiles
// and tiles are rendered concurrently, but every pixel draws its samples
// from its own seeded stream, so output is bit-identical for any worker
// count or tile size.
type Raytracer struct {
	scene  Scene
	camera *Camera
	config Config
}

// NewRaytracer creates a raytracer for the given scene, camera and config
func NewRaytracer(scene Scene, camera *Camera, config Config) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: camera,
		config: config,
	}
}

// Render traces the whole image and returns the framebuffer. The context
// aborts the render between tiles.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, error) {
	if rt.config.Width <= 0 || rt.config.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", rt.config.Width, rt.config.Height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", rt.config.SamplesPerPixel)
	}
	if rt.config.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must be non-negative, got %d", rt.config.MaxDepth)
	}

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	tiles := SplitIntoTiles(rt.config.Width, rt.config.Height, rt.config.TileSize)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for _, tile := range tiles {
		tile := tile
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rt.renderTile(tile, fb)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fb, nil
}

// renderTile renders one tile into the framebuffer. Each pixel gets a
// sampler seeded from (seed, x, y), independent of tile layout.
func (rt *Raytracer) renderTile(tile image.Rectangle, fb *Framebuffer) {
	gamma := rt.config.Gamma
	if gamma == 0 {
		gamma = 2.0
	}
	invSamples := 1.0 / float64(rt.config.SamplesPerPixel)

	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			sampler := core.NewPixelSampler(rt.config.Seed, x, y)

			var accumulated core.Vec3
			for s := 0; s < rt.config.SamplesPerPixel; s++ {
				u := (float64(x) + sampler.Get1D()) / float64(rt.config.Width)
				v := (float64(rt.config.Height-1-y) + sampler.Get1D()) / float64(rt.config.Height)

				ray := rt.camera.GetRay(u, v, sampler)
				accumulated = accumulated.Add(rt.sampleColor(ray, sampler))
			}

			// Gamma correction happens once, at the final pixel write
			pixel := accumulated.Multiply(invSamples).GammaCorrect(gamma).Clamp(0, 1)
			fb.Set(x, y, pixel)
		}
	}
}

// sampleColor evaluates one camera ray. A zero scatter budget short-circuits
// to the background without any intersection work.
func (rt *Raytracer) sampleColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	if rt.config.MaxDepth == 0 {
		return rt.scene.Background(ray)
	}
	return rt.rayColor(ray, rt.config.MaxDepth, sampler)
}

// rayColor recursively traces a ray with the given remaining scatter budget
func (rt *Raytracer) rayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// Path ran out of bounces before escaping; contributes no light
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	// Non-finite rays from pathological scatter directions count as misses
	if !ray.IsValid() {
		return rt.scene.Background(ray)
	}

	hit, ok := rt.scene.Hit(ray, tMinEpsilon, math.Inf(1))
	if !ok {
		return rt.scene.Background(ray)
	}

	var emitted core.Vec3
	if emitter, isEmitter := hit.Material.(material.Emitter); isEmitter {
		emitted = emitter.Emit(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}
	if !scatter.Scattered.IsValid() {
		// Degenerate scatter direction; treat as absorbed
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, sampler)))
}
