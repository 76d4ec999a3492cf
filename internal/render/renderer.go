package render

import (
	"fmt"
	"log/slog"
	"strings"

	"firstgame/internal/config"
	"firstgame/internal/logsink"
)

// Renderer draws the model list onto a surface once per frame.
type Renderer struct {
	surface Surface
	assets  AssetSource
	cfg     config.Render
	log     *slog.Logger

	gl       GL
	shader   *Shader
	models   []*Model
	textures []*Texture

	width           int
	height          int
	projectionDirty bool

	initialized bool
	released    bool
}

// NewRenderer prepares a renderer; nothing touches the GPU until Init.
// assets may be nil, in which case no model is created.
func NewRenderer(surface Surface, assets AssetSource, cfg config.Render) *Renderer {
	return &Renderer{
		surface:         surface,
		assets:          assets,
		cfg:             cfg,
		log:             logsink.For(logsink.TagRenderer),
		width:           -1,
		height:          -1,
		projectionDirty: true,
	}
}

// Init binds the rendering context and builds the shader and models.
// A shader failure is returned but the renderer stays bound, so Render still
// clears and presents.
func (r *Renderer) Init() error {
	if r.initialized {
		return nil
	}
	r.log.Info("Initializing renderer...")

	configs := r.surface.Configs()
	fb, ok := ChooseConfig(configs)
	if !ok {
		if len(configs) == 0 {
			r.log.Error("display offers no framebuffer config")
			return ErrNoConfig
		}
		fb = configs[0]
		r.log.Warn("no exact framebuffer config, using first available", "wanted", Wanted.String(), "using", fb.String())
	}

	gl, err := r.surface.Bind(fb)
	if err != nil {
		r.log.Error("bind surface failed", "err", err)
		return fmt.Errorf("bind surface: %w", err)
	}
	r.gl = gl
	r.initialized = true
	r.width, r.height = -1, -1
	r.projectionDirty = true

	r.logGLStrings()

	c := r.cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(BLEND)
	gl.BlendFunc(SRC_ALPHA, ONE_MINUS_SRC_ALPHA)

	vert, frag := QuadShaderSources(r.surface.Profile())
	shader, err := LoadShader(gl, vert, frag, AttribPosition, AttribUV, UniformProjection)
	if err != nil {
		r.log.Error("shader unavailable, nothing will be drawn", "err", err)
		return fmt.Errorf("quad shader: %w", err)
	}
	r.shader = shader
	r.shader.Activate()

	r.createModels()
	CheckGLError(gl, logsink.For(logsink.TagUtility), false)
	return nil
}

func (r *Renderer) logGLStrings() {
	r.log.Info("GL_VENDOR: " + r.gl.GetString(VENDOR))
	r.log.Info("GL_RENDERER: " + r.gl.GetString(RENDERER))
	r.log.Info("GL_VERSION: " + r.gl.GetString(VERSION))
	exts := strings.Fields(r.gl.GetString(EXTENSIONS))
	r.log.Debug("GL_EXTENSIONS", "count", len(exts))
	for _, e := range exts {
		r.log.Debug(e)
	}
}

func (r *Renderer) createModels() {
	if r.assets == nil {
		r.log.Error("asset manager unavailable, texture loading failed")
		return
	}
	tex, err := LoadTexture(r.gl, r.assets, r.cfg.TextureAsset)
	if err != nil {
		r.log.Error("texture loading failed", "err", err)
		return
	}
	r.textures = append(r.textures, tex)
	r.models = append(r.models, NewModel(r.gl, QuadVertices(), QuadIndices(), tex))
}

// Resize records the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.projectionDirty = true
}

// Render draws one frame and presents it.
func (r *Renderer) Render() {
	if !r.initialized || r.released {
		return
	}
	gl := r.gl
	hasArea := r.width > 0 && r.height > 0
	if hasArea {
		gl.Viewport(0, 0, r.width, r.height)
	}

	if r.projectionDirty && hasArea && r.shader.Valid() {
		proj := OrthographicMatrix(
			r.cfg.ProjectionHalfHeight,
			float32(r.width)/float32(r.height),
			r.cfg.NearPlane,
			r.cfg.FarPlane,
		)
		r.shader.Activate()
		r.shader.SetProjectionMatrix(proj)
		r.projectionDirty = false
	}

	gl.Clear(COLOR_BUFFER_BIT)
	for _, m := range r.models {
		r.shader.DrawModel(m)
	}
	r.surface.SwapBuffers()
}

// Usable reports whether frames will contain the models.
func (r *Renderer) Usable() bool {
	return r.initialized && !r.released && r.shader.Valid()
}

// Models returns the models in draw order.
func (r *Renderer) Models() []*Model { return r.models }

// Release frees GPU objects, then the surface. Safe to call more than once.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true
	for _, m := range r.models {
		m.Release()
	}
	r.models = nil
	for _, t := range r.textures {
		t.Release()
	}
	r.textures = nil
	if r.shader != nil {
		r.shader.Deactivate()
		r.shader.Release()
		r.shader = nil
	}
	r.surface.Release()
	r.log.Info("renderer released")
}
