package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/df07/go-ao-raytracer/pkg/geometry"
	"github.com/df07/go-ao-raytracer/pkg/material"
	"github.com/df07/go-ao-raytracer/pkg/renderer"
	"github.com/df07/go-ao-raytracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo lists the shading parameters of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"color":            toArray(mat.Color),
		"reflectance":      mat.Reflectance,
		"specularStrength": mat.SpecularStrength,
		"specularExponent": mat.SpecularExponent,
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = toArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = toArray(geom.Point)
		properties["normal"] = toArray(geom.Normal)
		return "plane", properties

	case *geometry.TriangleMesh:
		properties["triangleCount"] = geom.GetTriangleCount()
		return "triangle_mesh", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray of a pixel and reports the nearest hit
func inspectPixel(sceneObj *scene.Scene, config renderer.Config, pixelX, pixelY int) InspectResponse {
	ray := renderer.NewCamera(config).GetRay(pixelX, pixelY)

	hit, isHit := renderer.NewRaytracer(sceneObj, config).TraceRay(ray)
	if !isHit {
		return InspectResponse{Hit: false}
	}

	geometryType, geometryProps := extractGeometryInfo(hit.Shape)

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        toArray(ray.At(hit.Distance)),
		Normal:       toArray(hit.Normal),
		Distance:     hit.Distance,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Shape.Material()),
			"geometry": geometryProps,
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(c echo.Context) error {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
	}

	pixelX, err := strconv.Atoi(c.QueryParam("x"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid x coordinate")
	}
	pixelY, err := strconv.Atoi(c.QueryParam("y"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid y coordinate")
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		return jsonError(c, http.StatusBadRequest, "Pixel coordinates out of bounds")
	}

	sceneObj, config, err := s.setupRender(req)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, inspectPixel(sceneObj, config, pixelX, pixelY))
}
