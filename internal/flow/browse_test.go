package flow

import (
	"context"
	"errors"
	"testing"
)

func TestBrowse_Load(t *testing.T) {
	data := &stubData{listRows: []map[string]any{
		{
			"id_ruta":           "r2",
			"titulo":            "Centro histórico",
			"descripcion":       "Un paseo por el casco viejo",
			"categoria":         "Historia",
			"imagen_url":        "https://example.com/r2.jpg",
			"estado_validacion": "aprobada",
			"fecha_creacion":    "2024-05-02",
		},
		{
			"id_ruta":           "r1",
			"titulo":            "Mercado central",
			"categoria":         "Gastronomía",
			"imagen_url":        nil,
			"estado_validacion": "aprobada",
			"fecha_creacion":    "2024-05-01",
		},
	}}
	browse := NewBrowseFlow(data, nil)

	routes := browse.Load(context.Background())
	if len(routes) != 2 {
		t.Fatalf("loaded %d routes, want 2", len(routes))
	}
	if routes[0].ID != "r2" || routes[0].Category != "Historia" {
		t.Errorf("routes[0] = %+v", routes[0])
	}
	if routes[1].ImageURL != "" {
		t.Errorf("null image url mapped to %q", routes[1].ImageURL)
	}
}

func TestBrowse_LoadFailureRendersEmpty(t *testing.T) {
	data := &stubData{listErr: errors.New("network down")}
	browse := NewBrowseFlow(data, nil)

	if routes := browse.Load(context.Background()); len(routes) != 0 {
		t.Errorf("routes = %v, want empty on failure", routes)
	}
}

func TestBrowse_Filter(t *testing.T) {
	routes := []Route{
		{ID: "r1", Category: "Historia"},
		{ID: "r2", Category: "Gastronomía"},
		{ID: "r3", Category: "Historia"},
	}

	all := Filter(routes, "Todas")
	if len(all) != 3 {
		t.Errorf("Todas kept %d routes, want 3", len(all))
	}
	historic := Filter(routes, "Historia")
	if len(historic) != 2 || historic[0].ID != "r1" || historic[1].ID != "r3" {
		t.Errorf("Historia = %v", historic)
	}
	if none := Filter(routes, "Aventura"); len(none) != 0 {
		t.Errorf("Aventura = %v, want empty", none)
	}
}
