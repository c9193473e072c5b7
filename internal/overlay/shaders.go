package overlay

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Content vertex shader: places the frozen content with the camera. Must
// match view.Camera.ToNDC.
const contentVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform vec2 uContentSize;
uniform vec2 uWindow;
uniform vec2 uCamera;
uniform float uScale;

out vec2 vUV;

void main() {
    vec2 c = aPos * uContentSize;
    vec2 ndc = ((c - uCamera) / uWindow * 2.0 - 1.0) * uScale;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aPos;
}
` + "\x00"

// Content fragment shader.
const contentFragSrc = `#version 410 core

uniform sampler2D uTex;

in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = texture(uTex, vUV);
}
` + "\x00"

// Shade fragment shader: drawn over the whole window, darkens everything
// outside the flashlight circle. Must match view.RenderParams.ShadowAt. The
// radius is in content pixels, so it grows with the zoom.
const shadeFragSrc = `#version 410 core

uniform vec2 uCursor;      // window coordinates, y down
uniform vec2 uWindow;
uniform float uPixelRatio; // framebuffer pixels per window unit
uniform float uScale;
uniform float uShadow;
uniform float uRadius;

out vec4 FragColor;

void main() {
    vec2 p = gl_FragCoord.xy / uPixelRatio;
    p.y = uWindow.y - p.y;
    float a = length(uCursor - p) < uRadius * uScale ? 0.0 : uShadow;
    FragColor = vec4(0.0, 0.0, 0.0, a);
}
` + "\x00"

// Rect vertex shader: a screen-space rectangle in window coordinates, used
// by the panel and the shade pass.
const rectVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

uniform vec4 uRect; // x, y, w, h
uniform vec2 uWindow;

out vec2 vUV;

void main() {
    vec2 p = uRect.xy + aPos * uRect.zw;
    vec2 ndc = (p / uWindow) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aPos;
}
` + "\x00"

// Panel fragment shader: premultiplied texture faded by uAlpha.
const panelFragSrc = `#version 410 core

uniform sampler2D uTex;
uniform float uAlpha;

in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = texture(uTex, vUV) * uAlpha;
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}
