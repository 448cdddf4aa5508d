package remote

import (
	"context"
	"net/http"
	"net/url"
)

// DataAPI is the hosted table API: filtered reads and inserts, nothing more.
type DataAPI interface {
	ReadOne(ctx context.Context, table string, filters map[string]string) (map[string]any, error)
	Insert(ctx context.Context, table string, record map[string]any) error
	List(ctx context.Context, table string, filters map[string]string, orderBy string, descending bool) ([]map[string]any, error)
}

type dataClient struct {
	core *Client
}

func NewDataClient(core *Client) DataAPI {
	return &dataClient{core: core}
}

// ReadOne returns (nil, nil) when no row matches, mirroring the service's
// maybe-single semantics.
func (c *dataClient) ReadOne(ctx context.Context, table string, filters map[string]string) (map[string]any, error) {
	query := filterQuery(filters)
	query.Set("limit", "1")
	var rows []map[string]any
	if err := c.core.do(ctx, http.MethodGet, "/rest/v1/"+table, query, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (c *dataClient) Insert(ctx context.Context, table string, record map[string]any) error {
	return c.core.do(ctx, http.MethodPost, "/rest/v1/"+table, nil, record, nil)
}

func (c *dataClient) List(ctx context.Context, table string, filters map[string]string, orderBy string, descending bool) ([]map[string]any, error) {
	query := filterQuery(filters)
	if orderBy != "" {
		direction := "asc"
		if descending {
			direction = "desc"
		}
		query.Set("order", orderBy+"."+direction)
	}
	var rows []map[string]any
	if err := c.core.do(ctx, http.MethodGet, "/rest/v1/"+table, query, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func filterQuery(filters map[string]string) url.Values {
	query := url.Values{}
	for column, value := range filters {
		query.Set(column, "eq."+value)
	}
	return query
}
