package renderer

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/geometry"
)

// Config contains rendering configuration
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int    // 0 uses all CPUs
	Seed            uint64 // Base seed; per-tile streams derive from it
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         0,
		Seed:            42,
	}
}

// Scene is what the renderer needs from scene construction, kept as a
// small interface to avoid a dependency on the scene package
type Scene interface {
	Camera() *Camera
	World() core.Hittable
	Lights() *geometry.HittableList
	BackgroundColors() (top, bottom core.Vec3)
}

// Renderer renders a scene to an image using parallel tile workers.
// The scene graph is shared read-only; every tile owns an independent
// sampler so results are deterministic for a given seed.
type Renderer struct {
	scene  Scene
	config Config
	logger *slog.Logger
}

// NewRenderer creates a renderer for the given scene and configuration
func NewRenderer(scene Scene, config Config, logger *slog.Logger) *Renderer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{scene: scene, config: config, logger: logger}
}

// tileRows is the height of one work unit. Rows are disjoint, so
// workers write to the shared image without synchronization.
const tileRows = 16

// Render traces the full image and returns it
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, error) {
	width, height := r.config.Width, r.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	integrator := NewIntegrator(
		r.scene.World(),
		r.scene.Lights(),
		topOf(r.scene),
		bottomOf(r.scene),
		r.config.MaxDepth,
	)
	camera := r.scene.Camera()

	start := time.Now()
	r.logger.Info("render start",
		"width", width, "height", height,
		"samples", r.config.SamplesPerPixel,
		"max_depth", r.config.MaxDepth,
		"workers", r.config.Workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	for rowStart := 0; rowStart < height; rowStart += tileRows {
		rowStart := rowStart
		rowEnd := min(rowStart+tileRows, height)
		tileIndex := uint64(rowStart / tileRows)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sampler := core.NewRandomSampler(r.config.Seed, tileIndex)
			r.renderRows(img, integrator, camera, sampler, rowStart, rowEnd)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("render complete", "elapsed", time.Since(start))
	return img, nil
}

// renderRows traces all pixels in the row band [rowStart, rowEnd)
func (r *Renderer) renderRows(img *image.RGBA, integrator *Integrator, camera *Camera, sampler core.Sampler, rowStart, rowEnd int) {
	width, height := r.config.Width, r.config.Height

	for j := rowStart; j < rowEnd; j++ {
		for i := 0; i < width; i++ {
			accum := core.Vec3{}
			for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
				// Jitter within the pixel; image row 0 is the top of
				// the viewport, so flip t
				s := (float64(i) + sampler.Get1D()) / float64(width)
				t := (float64(height-1-j) + sampler.Get1D()) / float64(height)

				ray := camera.GetRay(s, t, sampler)
				accum = accum.Add(integrator.Li(ray, sampler))
			}

			pixel := accum.Multiply(1.0 / float64(r.config.SamplesPerPixel))
			img.SetRGBA(i, j, vecToColor(pixel))
		}
	}
}

// vecToColor converts a radiance value to an 8-bit color with gamma-2
// correction and clamping
func vecToColor(v core.Vec3) color.RGBA {
	v = v.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * v.X),
		G: uint8(255 * v.Y),
		B: uint8(255 * v.Z),
		A: 255,
	}
}

func topOf(s Scene) core.Vec3 {
	top, _ := s.BackgroundColors()
	return top
}

func bottomOf(s Scene) core.Vec3 {
	_, bottom := s.BackgroundColors()
	return bottom
}
