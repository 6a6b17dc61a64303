package scene

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/geometry"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/material"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/renderer"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/texture"
)

// sceneFile is the YAML scene description schema
type sceneFile struct {
	Camera     cameraSpec     `yaml:"camera"`
	Render     renderSpec     `yaml:"render"`
	Background backgroundSpec `yaml:"background"`
	Textures   []textureSpec  `yaml:"textures"`
	Materials  []materialSpec `yaml:"materials"`
	Objects    []objectSpec   `yaml:"objects"`
}

type cameraSpec struct {
	Center        []float64 `yaml:"center"`
	LookAt        []float64 `yaml:"look_at"`
	Up            []float64 `yaml:"up"`
	VFov          float64   `yaml:"vfov"`
	AspectRatio   float64   `yaml:"aspect_ratio"`
	Aperture      float64   `yaml:"aperture"`
	FocusDistance float64   `yaml:"focus_distance"`
	Time0         float64   `yaml:"time0"`
	Time1         float64   `yaml:"time1"`
}

type renderSpec struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	Workers         int    `yaml:"workers"`
	Seed            uint64 `yaml:"seed"`
}

type backgroundSpec struct {
	Top    []float64 `yaml:"top"`
	Bottom []float64 `yaml:"bottom"`
}

type textureSpec struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"` // solid, checker, image
	Color []float64 `yaml:"color"`
	Scale float64   `yaml:"scale"`
	Even  []float64 `yaml:"even"`
	Odd   []float64 `yaml:"odd"`
	File  string    `yaml:"file"`
}

type materialSpec struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"` // lambertian, metal, dielectric, diffuse_light, isotropic
	Albedo  []float64 `yaml:"albedo"`
	Texture string    `yaml:"texture"`
	Fuzz    float64   `yaml:"fuzz"`
	RefIdx  float64   `yaml:"ref_idx"`
	Emit    []float64 `yaml:"emit"`
}

type objectSpec struct {
	Type     string    `yaml:"type"` // sphere, quad
	Material string    `yaml:"material"`
	Light    bool      `yaml:"light"`
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Corner   []float64 `yaml:"corner"`
	U        []float64 `yaml:"u"`
	V        []float64 `yaml:"v"`
}

// LoadFile reads a YAML scene description from a file
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening scene file %q", path)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a YAML scene description and builds the scene it
// describes
func Load(r io.Reader) (*Scene, error) {
	var file sceneFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "parsing scene file")
	}

	camera, err := buildCamera(file.Camera, file.Render)
	if err != nil {
		return nil, err
	}

	top, err := vec3Or(file.Background.Top, core.Vec3{})
	if err != nil {
		return nil, errors.Wrap(err, "background.top")
	}
	bottom, err := vec3Or(file.Background.Bottom, core.Vec3{})
	if err != nil {
		return nil, errors.Wrap(err, "background.bottom")
	}

	s := New(camera, top, bottom)
	applyRenderSpec(&s.RenderConfig, file.Render)

	textures, err := buildTextures(file.Textures)
	if err != nil {
		return nil, err
	}
	materials, err := buildMaterials(file.Materials, textures)
	if err != nil {
		return nil, err
	}

	for i, spec := range file.Objects {
		object, err := buildObject(spec, materials)
		if err != nil {
			return nil, errors.Wrapf(err, "objects[%d]", i)
		}
		if spec.Light {
			s.AddLight(object)
		} else {
			s.Add(object)
		}
	}

	return s, nil
}

func buildCamera(spec cameraSpec, render renderSpec) (*renderer.Camera, error) {
	center, err := vec3Or(spec.Center, core.NewVec3(0, 0, 1))
	if err != nil {
		return nil, errors.Wrap(err, "camera.center")
	}
	lookAt, err := vec3Or(spec.LookAt, core.Vec3{})
	if err != nil {
		return nil, errors.Wrap(err, "camera.look_at")
	}
	up, err := vec3Or(spec.Up, core.NewVec3(0, 1, 0))
	if err != nil {
		return nil, errors.Wrap(err, "camera.up")
	}

	vfov := spec.VFov
	if vfov == 0 {
		vfov = 40.0
	}
	if vfov <= 0 || vfov >= 180 {
		return nil, errors.Errorf("camera.vfov must be in (0, 180), got %v", vfov)
	}

	aspect := spec.AspectRatio
	if aspect == 0 && render.Width > 0 && render.Height > 0 {
		aspect = float64(render.Width) / float64(render.Height)
	}
	if aspect <= 0 {
		return nil, errors.New("camera.aspect_ratio or render width/height required")
	}

	if spec.Time1 < spec.Time0 {
		return nil, errors.Errorf("camera shutter interval [%v, %v] is reversed", spec.Time0, spec.Time1)
	}

	return renderer.NewCamera(renderer.CameraConfig{
		Center:        center,
		LookAt:        lookAt,
		Up:            up,
		VFov:          vfov,
		AspectRatio:   aspect,
		Aperture:      spec.Aperture,
		FocusDistance: spec.FocusDistance,
		Time0:         spec.Time0,
		Time1:         spec.Time1,
	}), nil
}

func applyRenderSpec(config *renderer.Config, spec renderSpec) {
	if spec.Width > 0 {
		config.Width = spec.Width
	}
	if spec.Height > 0 {
		config.Height = spec.Height
	}
	if spec.SamplesPerPixel > 0 {
		config.SamplesPerPixel = spec.SamplesPerPixel
	}
	if spec.MaxDepth > 0 {
		config.MaxDepth = spec.MaxDepth
	}
	if spec.Workers > 0 {
		config.Workers = spec.Workers
	}
	if spec.Seed > 0 {
		config.Seed = spec.Seed
	}
}

func buildTextures(specs []textureSpec) (map[string]core.Texture, error) {
	textures := make(map[string]core.Texture, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, errors.Errorf("textures[%d]: name is required", i)
		}
		if _, exists := textures[spec.Name]; exists {
			return nil, errors.Errorf("textures[%d]: duplicate name %q", i, spec.Name)
		}

		var tex core.Texture
		var err error
		switch spec.Type {
		case "solid":
			color, cerr := vec3(spec.Color)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "textures[%d] %q: color", i, spec.Name)
			}
			tex = texture.NewSolidColor(color)
		case "checker":
			even, cerr := vec3(spec.Even)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "textures[%d] %q: even", i, spec.Name)
			}
			odd, cerr := vec3(spec.Odd)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "textures[%d] %q: odd", i, spec.Name)
			}
			scale := spec.Scale
			if scale <= 0 {
				scale = 1.0
			}
			tex = texture.NewCheckerColors(scale, even, odd)
		case "image":
			tex, err = texture.LoadImage(spec.File)
			if err != nil {
				return nil, errors.Wrapf(err, "textures[%d] %q", i, spec.Name)
			}
		default:
			return nil, errors.Errorf("textures[%d] %q: unknown type %q", i, spec.Name, spec.Type)
		}
		textures[spec.Name] = tex
	}
	return textures, nil
}

func buildMaterials(specs []materialSpec, textures map[string]core.Texture) (map[string]core.Material, error) {
	materials := make(map[string]core.Material, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, errors.Errorf("materials[%d]: name is required", i)
		}
		if _, exists := materials[spec.Name]; exists {
			return nil, errors.Errorf("materials[%d]: duplicate name %q", i, spec.Name)
		}

		albedoTexture, err := resolveAlbedo(spec, textures)
		if err != nil {
			return nil, errors.Wrapf(err, "materials[%d] %q", i, spec.Name)
		}

		var mat core.Material
		switch spec.Type {
		case "lambertian":
			if albedoTexture == nil {
				return nil, errors.Errorf("materials[%d] %q: albedo or texture required", i, spec.Name)
			}
			mat = material.NewTexturedLambertian(albedoTexture)
		case "metal":
			albedo, cerr := vec3(spec.Albedo)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "materials[%d] %q: albedo", i, spec.Name)
			}
			if spec.Fuzz < 0 || spec.Fuzz > 1 {
				return nil, errors.Errorf("materials[%d] %q: fuzz must be in [0, 1], got %v", i, spec.Name, spec.Fuzz)
			}
			mat = material.NewMetal(albedo, spec.Fuzz)
		case "dielectric":
			if spec.RefIdx <= 0 {
				return nil, errors.Errorf("materials[%d] %q: ref_idx must be positive, got %v", i, spec.Name, spec.RefIdx)
			}
			mat = material.NewDielectric(spec.RefIdx)
		case "diffuse_light":
			emit, cerr := vec3(spec.Emit)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "materials[%d] %q: emit", i, spec.Name)
			}
			mat = material.NewDiffuseLight(emit)
		case "isotropic":
			if albedoTexture == nil {
				return nil, errors.Errorf("materials[%d] %q: albedo or texture required", i, spec.Name)
			}
			mat = material.NewTexturedIsotropic(albedoTexture)
		default:
			return nil, errors.Errorf("materials[%d] %q: unknown type %q", i, spec.Name, spec.Type)
		}
		materials[spec.Name] = mat
	}
	return materials, nil
}

// resolveAlbedo returns the named texture, a solid texture from the
// albedo color, or nil when the spec provides neither
func resolveAlbedo(spec materialSpec, textures map[string]core.Texture) (core.Texture, error) {
	if spec.Texture != "" {
		tex, ok := textures[spec.Texture]
		if !ok {
			return nil, errors.Errorf("unknown texture %q", spec.Texture)
		}
		return tex, nil
	}
	if len(spec.Albedo) > 0 {
		color, err := vec3(spec.Albedo)
		if err != nil {
			return nil, errors.Wrap(err, "albedo")
		}
		return texture.NewSolidColor(color), nil
	}
	return nil, nil
}

func buildObject(spec objectSpec, materials map[string]core.Material) (core.Hittable, error) {
	mat, ok := materials[spec.Material]
	if !ok {
		return nil, errors.Errorf("unknown material %q", spec.Material)
	}

	switch spec.Type {
	case "sphere":
		center, err := vec3(spec.Center)
		if err != nil {
			return nil, errors.Wrap(err, "center")
		}
		if spec.Radius <= 0 {
			return nil, errors.Errorf("sphere radius must be positive, got %v", spec.Radius)
		}
		return geometry.NewSphere(center, spec.Radius, mat), nil
	case "quad":
		corner, err := vec3(spec.Corner)
		if err != nil {
			return nil, errors.Wrap(err, "corner")
		}
		u, err := vec3(spec.U)
		if err != nil {
			return nil, errors.Wrap(err, "u")
		}
		v, err := vec3(spec.V)
		if err != nil {
			return nil, errors.Wrap(err, "v")
		}
		if u.Cross(v).LengthSquared() == 0 {
			return nil, errors.New("quad edge vectors must not be parallel")
		}
		return geometry.NewQuad(corner, u, v, mat), nil
	default:
		return nil, errors.Errorf("unknown object type %q", spec.Type)
	}
}

func vec3(values []float64) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, errors.Errorf("expected 3 components, got %d", len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

// vec3Or is vec3 with a default for an absent value
func vec3Or(values []float64, fallback core.Vec3) (core.Vec3, error) {
	if len(values) == 0 {
		return fallback, nil
	}
	return vec3(values)
}
