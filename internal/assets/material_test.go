package assets

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMaterialParsesDefinition(t *testing.T) {
	path := writeFile(t, "rusty.json",
		`{"name":"rusty","color":"Maroon","metallic":0.8,"roughness":0.3,"emissive":0.1}`)

	m := NewManager()
	h := m.LoadMaterial(path)

	mat, ok := m.Material(h)
	if !ok {
		t.Fatal("loaded material not retrievable")
	}
	if mat.Name != "rusty" {
		t.Errorf("Name = %q", mat.Name)
	}
	if mat.Color != rl.Maroon {
		t.Errorf("Color = %v, want Maroon", mat.Color)
	}
	if mat.Metallic != 0.8 || mat.Roughness != 0.3 || mat.Emissive != 0.1 {
		t.Errorf("scalars = %v/%v/%v", mat.Metallic, mat.Roughness, mat.Emissive)
	}
}

func TestLoadMaterialDeduplicatesByPath(t *testing.T) {
	path := writeFile(t, "mat.json", `{"name":"mat","color":"Blue"}`)

	m := NewManager()
	h1 := m.LoadMaterial(path)
	h2 := m.LoadMaterial(path)

	if h1 != h2 {
		t.Errorf("same path loaded twice: handles %d and %d", h1.Index(), h2.Index())
	}
}

func TestLoadMaterialFallsBackOnMissingFile(t *testing.T) {
	m := NewManager()
	h := m.LoadMaterial(filepath.Join(t.TempDir(), "nope.json"))

	mat, ok := m.Material(h)
	if !ok {
		t.Fatal("missing-file load produced no material")
	}
	if mat.Name != "default" || mat.Color != rl.White {
		t.Errorf("fallback material = %+v", mat)
	}
}

func TestLoadMaterialFallsBackOnBadJSON(t *testing.T) {
	path := writeFile(t, "broken.json", `{"name":`)

	m := NewManager()
	mat, ok := m.Material(m.LoadMaterial(path))
	if !ok || mat.Name != "default" {
		t.Errorf("malformed JSON: material = %+v, ok = %v", mat, ok)
	}
}

func TestLookupColor(t *testing.T) {
	if LookupColor("Gold") != rl.Gold {
		t.Error("known color name not resolved")
	}
	if LookupColor("Vantablack") != rl.White {
		t.Error("unknown color name did not default to white")
	}
}
