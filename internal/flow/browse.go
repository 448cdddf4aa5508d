package flow

import (
	"context"

	"rutasapp/internal/remote"

	"github.com/sirupsen/logrus"
)

const routesTable = "ruta"

// Categories is the fixed filter set shown on the browse screen. "Todas"
// means no filter.
var Categories = []string{"Todas", "Cultura", "Gastronomía", "Aventura", "Historia"}

type Route struct {
	ID              string
	Title           string
	Description     string
	Category        string
	ImageURL        string
	ValidationState string
	CreatedAt       string
}

// BrowseFlow loads the approved routes feed, newest first. A remote failure
// is logged and renders as an empty list, as the source screen did.
type BrowseFlow struct {
	data   remote.DataAPI
	logger logrus.FieldLogger
}

func NewBrowseFlow(data remote.DataAPI, logger logrus.FieldLogger) *BrowseFlow {
	return &BrowseFlow{data: data, logger: logger}
}

func (f *BrowseFlow) Load(ctx context.Context) []Route {
	rows, err := f.data.List(ctx, routesTable,
		map[string]string{"estado_validacion": "aprobada"},
		"fecha_creacion", true)
	if err != nil {
		if f.logger != nil {
			f.logger.WithError(err).Error("loading routes failed")
		}
		return nil
	}

	routes := make([]Route, 0, len(rows))
	for _, row := range rows {
		routes = append(routes, Route{
			ID:              stringField(row, "id_ruta"),
			Title:           stringField(row, "titulo"),
			Description:     stringField(row, "descripcion"),
			Category:        stringField(row, "categoria"),
			ImageURL:        stringField(row, "imagen_url"),
			ValidationState: stringField(row, "estado_validacion"),
			CreatedAt:       stringField(row, "fecha_creacion"),
		})
	}
	return routes
}

// Filter narrows a loaded feed to one category.
func Filter(routes []Route, category string) []Route {
	if category == "" || category == "Todas" {
		return routes
	}
	filtered := make([]Route, 0, len(routes))
	for _, route := range routes {
		if route.Category == category {
			filtered = append(filtered, route)
		}
	}
	return filtered
}

func stringField(row map[string]any, key string) string {
	if value, ok := row[key].(string); ok {
		return value
	}
	return ""
}
