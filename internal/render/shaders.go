package render

// Profile selects the shading-language dialect a surface accepts.
type Profile int

const (
	ProfileES2    Profile = iota // GLES 2/3 through x/mobile
	ProfileCore41                // desktop 4.1 core
)

func (p Profile) String() string {
	switch p {
	case ProfileES2:
		return "es2"
	case ProfileCore41:
		return "core41"
	}
	return "unknown"
}

// Attribute and uniform names shared by every quad shader.
const (
	AttribPosition    = "inPosition"
	AttribUV          = "inUV"
	UniformProjection = "uProjection"
)

// Quad vertex shader (GLSL ES 1.00): projected position, pass-through UV.
const quadVertSrcES2 = `
attribute vec4 inPosition;
attribute vec2 inUV;
uniform mat4 uProjection;
varying vec2 fragUV;
void main() {
  gl_Position = uProjection * inPosition;
  fragUV = inUV;
}`

// Quad fragment shader (GLSL ES 1.00): plain texture sample on unit 0.
const quadFragSrcES2 = `
precision mediump float;
varying vec2 fragUV;
uniform sampler2D uTexture;
void main() {
  gl_FragColor = texture2D(uTexture, fragUV);
}`

const quadVertSrcCore41 = `#version 410 core

in vec4 inPosition;
in vec2 inUV;

uniform mat4 uProjection;

out vec2 fragUV;

void main() {
    gl_Position = uProjection * inPosition;
    fragUV = inUV;
}
`

const quadFragSrcCore41 = `#version 410 core

uniform sampler2D uTexture;

in vec2 fragUV;
out vec4 FragColor;

void main() {
    FragColor = texture(uTexture, fragUV);
}
`

// QuadShaderSources returns the textured-quad program for a profile.
func QuadShaderSources(p Profile) (vertex, fragment string) {
	if p == ProfileCore41 {
		return quadVertSrcCore41, quadFragSrcCore41
	}
	return quadVertSrcES2, quadFragSrcES2
}
