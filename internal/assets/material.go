package assets

import (
	"encoding/json"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material defines surface properties for rendering.
type Material struct {
	Name      string
	Color     rl.Color
	Metallic  float32
	Roughness float32
	Emissive  float32
}

// materialDef is the JSON format for material files.
type materialDef struct {
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Metallic  float32 `json:"metallic"`
	Roughness float32 `json:"roughness"`
	Emissive  float32 `json:"emissive"`
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"SkyBlue":   rl.SkyBlue,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string, defaulting to
// white for unknown names.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func defaultMaterial() Material {
	return Material{
		Name:      "default",
		Color:     rl.White,
		Roughness: 0.5,
	}
}

// LoadMaterial loads a material definition from a JSON file, caching it by
// path. Parse or read errors fall back to the default material and log
// rather than failing the load.
func (m *Manager) LoadMaterial(path string) MaterialHandle {
	if h, ok := m.materials.LookupByName(path); ok {
		return h
	}

	h := m.materials.Allocate()
	m.materials.InsertNamed(path, h, readMaterial(path))
	return h
}

func readMaterial(path string) Material {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Assets: material %s unreadable (%v), using default", path, err)
		return defaultMaterial()
	}

	var def materialDef
	if err := json.Unmarshal(data, &def); err != nil {
		log.Printf("Assets: material %s malformed (%v), using default", path, err)
		return defaultMaterial()
	}

	return Material{
		Name:      def.Name,
		Color:     LookupColor(def.Color),
		Metallic:  def.Metallic,
		Roughness: def.Roughness,
		Emissive:  def.Emissive,
	}
}
