package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/MLR-5819/FSND-Fyyur/internal/config"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

// pageSize bounds one search request; SearchIDs pages until the hits run out.
var pageSize = 500

// Document is what gets indexed for a venue or artist.
type Document struct {
	ID     int64    `json:"id"`
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	City   string   `json:"city,omitempty"`
	State  string   `json:"state,omitempty"`
	Genres []string `json:"genres,omitempty"`
}

func (d Document) docID() string {
	return fmt.Sprintf("%s-%d", d.Kind, d.ID)
}

// DocumentFromEvent converts a change event into an index document.
func DocumentFromEvent(e models.RecordChangedEvent) Document {
	return Document{ID: e.ID, Kind: e.Kind, Name: e.Name, City: e.City, State: e.State, Genres: e.Genres}
}

func VenueDocument(v models.Venue) Document {
	return Document{ID: v.ID, Kind: models.KindVenue, Name: v.Name, City: v.City, State: v.State, Genres: v.GenreList()}
}

func ArtistDocument(a models.Artist) Document {
	return Document{ID: a.ID, Kind: models.KindArtist, Name: a.Name, City: a.City, State: a.State, Genres: a.GenreList()}
}

// ElasticsearchClient indexes venue and artist names for search.
type ElasticsearchClient struct {
	client *elasticsearch.Client
	config config.ElasticsearchConfig
}

func NewElasticsearchClient(cfg config.ElasticsearchConfig) (*ElasticsearchClient, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     []string{cfg.URL},
		Username:      cfg.Username,
		Password:      cfg.Password,
		RetryOnStatus: []int{502, 503, 504, 429},
		MaxRetries:    cfg.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	client := &ElasticsearchClient{client: es, config: cfg}

	if err := client.ensureIndex(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return client, nil
}

var indexMapping = map[string]interface{}{
	"settings": map[string]interface{}{
		"number_of_shards":   1,
		"number_of_replicas": 0,
	},
	"mappings": map[string]interface{}{
		"properties": map[string]interface{}{
			"id":   map[string]interface{}{"type": "long"},
			"kind": map[string]interface{}{"type": "keyword"},
			"name": map[string]interface{}{
				"type": "text",
				"fields": map[string]interface{}{
					"keyword": map[string]interface{}{"type": "keyword", "ignore_above": 256},
				},
			},
			"city":   map[string]interface{}{"type": "keyword"},
			"state":  map[string]interface{}{"type": "keyword"},
			"genres": map[string]interface{}{"type": "keyword"},
		},
	},
}

func (c *ElasticsearchClient) ensureIndex(ctx context.Context) error {
	res, err := esapi.IndicesExistsRequest{Index: []string{c.config.Index}}.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		slog.Debug("Elasticsearch index already exists", "index", c.config.Index)
		return nil
	}

	body, err := json.Marshal(indexMapping)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	createRes, err := esapi.IndicesCreateRequest{
		Index: c.config.Index,
		Body:  bytes.NewReader(body),
	}.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("failed to create index: %s", createRes.String())
	}

	slog.Info("Created Elasticsearch index", "index", c.config.Index)
	return nil
}

// Reset drops and recreates the index.
func (c *ElasticsearchClient) Reset(ctx context.Context) error {
	res, err := esapi.IndicesDeleteRequest{Index: []string{c.config.Index}}.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("failed to delete index: %s", res.String())
	}
	return c.ensureIndex(ctx)
}

func (c *ElasticsearchClient) Index(ctx context.Context, doc Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	res, err := esapi.IndexRequest{
		Index:      c.config.Index,
		DocumentID: doc.docID(),
		Body:       bytes.NewReader(body),
		Refresh:    "wait_for",
	}.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", doc.docID(), err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("indexing error: %s", res.String())
	}
	return nil
}

func (c *ElasticsearchClient) Delete(ctx context.Context, kind string, id int64) error {
	doc := Document{Kind: kind, ID: id}
	res, err := esapi.DeleteRequest{
		Index:      c.config.Index,
		DocumentID: doc.docID(),
		Refresh:    "wait_for",
	}.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", doc.docID(), err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete error: %s", res.String())
	}
	return nil
}

// SearchIDs returns ids of the given kind whose name contains term, ignoring case.
// Results are paged with search_after on id, so there is no upper bound.
func (c *ElasticsearchClient) SearchIDs(ctx context.Context, kind, term string) ([]int64, error) {
	var ids []int64
	var after []interface{}

	for {
		page, last, err := c.searchPage(ctx, buildNameQuery(kind, term, after))
		if err != nil {
			return nil, err
		}
		ids = append(ids, page...)
		if len(page) < pageSize || last == nil {
			return ids, nil
		}
		after = last
	}
}

func (c *ElasticsearchClient) searchPage(ctx context.Context, query map[string]interface{}) ([]int64, []interface{}, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	res, err := esapi.SearchRequest{
		Index: []string{c.config.Index},
		Body:  bytes.NewReader(body),
	}.Do(ctx, c.client)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, nil, fmt.Errorf("search error: %s", res.String())
	}
	return decodeIDs(res.Body)
}

// decodeIDs returns the hit ids and the sort values of the last hit.
func decodeIDs(r io.Reader) ([]int64, []interface{}, error) {
	var response struct {
		Hits struct {
			Hits []struct {
				Source Document      `json:"_source"`
				Sort   []interface{} `json:"sort"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(r).Decode(&response); err != nil {
		return nil, nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hits := response.Hits.Hits
	ids := make([]int64, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.Source.ID)
	}
	if len(hits) == 0 {
		return ids, nil, nil
	}
	return ids, hits[len(hits)-1].Sort, nil
}

func buildNameQuery(kind, term string, after []interface{}) map[string]interface{} {
	filter := []map[string]interface{}{
		{"term": map[string]interface{}{"kind": kind}},
	}

	must := []map[string]interface{}{}
	if term != "" {
		must = append(must, map[string]interface{}{
			"wildcard": map[string]interface{}{
				"name.keyword": map[string]interface{}{
					"value":            "*" + escapeWildcard(term) + "*",
					"case_insensitive": true,
				},
			},
		})
	}

	query := map[string]interface{}{
		"size":    pageSize,
		"_source": []string{"id"},
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": filter,
				"must":   must,
			},
		},
		"sort": []map[string]interface{}{
			{"id": map[string]interface{}{"order": "asc"}},
		},
	}
	if len(after) > 0 {
		query["search_after"] = after
	}
	return query
}

func escapeWildcard(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
	return r.Replace(term)
}

// HealthCheck reports whether the cluster answers.
func (c *ElasticsearchClient) HealthCheck(ctx context.Context) error {
	res, err := c.client.Ping(c.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("Elasticsearch ping error: %s", res.String())
	}
	return nil
}
