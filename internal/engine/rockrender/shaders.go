package rockrender

// Attribute locations follow the 44-byte vertex record.
const (
	attribPosition = 0
	attribNormal   = 1
	attribTangent  = 2
	attribTexCoord = 3
)

// Texture units bound by Material.
const (
	unitDiffuse  = 0
	unitSpecular = 1
	unitNormal   = 2
)

const rockVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aTangent;
layout (location = 3) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vNormal;
out vec3 vTangent;
out vec2 vTexCoord;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    mat3 normalMatrix = mat3(uModel);
    vNormal = normalMatrix * aNormal;
    vTangent = normalMatrix * aTangent;
    vTexCoord = aTexCoord;
    gl_Position = uProjection * uView * world;
}
`

const rockFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec3 vTangent;
in vec2 vTexCoord;

uniform sampler2D uDiffuseMap;
uniform sampler2D uSpecularMap;
uniform sampler2D uNormalMap;

uniform vec3 uDiffuseColor;
uniform bool uUseDiffuseMap;
uniform float uOpacity;

uniform vec3 uSpecularColor;
uniform float uSpecularIntensity;
uniform float uShininess;
uniform bool uUsePhong;
uniform bool uUseNormalMap;

uniform vec3 uAmbientColor;
uniform float uAmbientIntensity;

uniform vec3 uLightDir;
uniform vec3 uLightColor;
uniform vec3 uCameraPos;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    if (uUseNormalMap) {
        vec3 t = normalize(vTangent - dot(vTangent, n) * n);
        vec3 b = cross(n, t);
        vec3 mapped = texture(uNormalMap, vTexCoord).rgb * 2.0 - 1.0;
        n = normalize(mat3(t, b, n) * mapped);
    }

    vec3 albedo = uDiffuseColor;
    if (uUseDiffuseMap) {
        albedo *= texture(uDiffuseMap, vTexCoord).rgb;
    }

    vec3 l = normalize(uLightDir);
    vec3 v = normalize(uCameraPos - vWorldPos);
    float ndl = max(dot(n, l), 0.0);

    float spec = 0.0;
    if (ndl > 0.0) {
        if (uUsePhong) {
            spec = pow(max(dot(reflect(-l, n), v), 0.0), uShininess);
        } else {
            spec = pow(max(dot(n, normalize(l + v)), 0.0), uShininess);
        }
    }
    vec3 specular = uSpecularColor * texture(uSpecularMap, vTexCoord).rgb * uSpecularIntensity * spec;

    vec3 ambient = uAmbientColor * uAmbientIntensity * albedo;
    vec3 color = ambient + (albedo * ndl + specular) * uLightColor;
    FragColor = vec4(color, uOpacity);
}
`

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;

uniform mat4 uViewProj;

void main() {
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
`
