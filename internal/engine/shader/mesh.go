package shader

// MeshVertex transforms positions and normals to world space.
const MeshVertex = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vNormal;

void main() {
	vNormal = mat3(transpose(inverse(uModel))) * aNormal;
	gl_Position = uViewProj * uModel * vec4(aPosition, 1.0);
}
`

// MeshFragment shades with one ambient and one directional light.
const MeshFragment = `
#version 410 core

in vec3 vNormal;

uniform vec3 uColor;
uniform vec3 uAmbient;
uniform vec3 uLightDir;
uniform vec3 uLightColor;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	if (!gl_FrontFacing) {
		n = -n;
	}
	float diffuse = max(dot(n, normalize(uLightDir)), 0.0);
	vec3 light = uAmbient + uLightColor * diffuse;
	FragColor = vec4(uColor * light, 1.0);
}
`
