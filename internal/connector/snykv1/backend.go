package snykv1

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nucleus/snyk-core/internal/connector/http"
	"github.com/nucleus/snyk-core/internal/endpoint"
)

// =============================================================================
// SNYK V1 BACKEND
// =============================================================================

// Ensure interface compliance
var _ endpoint.Backend = (*Backend)(nil)

// Backend executes queries and writes against the legacy Snyk v1 API.
type Backend struct {
	client    *http.Client
	config    *Config
	paginator http.Paginator
}

// New creates a Snyk v1 backend with the given configuration.
func New(config *Config) (*Backend, error) {
	if config == nil {
		config = &Config{}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clientConfig := http.DefaultClientConfig()
	clientConfig.BaseURL = config.BaseURL
	clientConfig.Auth = config.Auth
	clientConfig.Transport = config.Transport
	clientConfig.Headers = map[string]string{
		"Content-Type": "application/json",
	}

	return &Backend{
		client: http.NewClient(clientConfig),
		config: config,
		paginator: &http.PagePaginator{
			ParameterName:  config.PaginationParameterName,
			DefaultLimit:   DefaultLimit,
			ExtractRecords: extractRecords,
		},
	}, nil
}

// =============================================================================
// RESPONSE MAPPING
// =============================================================================

// wrapperKeys are the envelope keys v1 list endpoints wrap their records in,
// checked in order.
var wrapperKeys = []string{"orgs", "projects", "snapshots", "members", "integrations", "results"}

// extractRecords pulls the record list out of a v1 response body. Bare lists
// pass through; objects are probed for a known wrapper key, then for a lone
// key holding a list. Anything else yields no records.
func extractRecords(body any) []any {
	if list, ok := body.([]any); ok {
		return list
	}
	envelope, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range wrapperKeys {
		if list, ok := envelope[key].([]any); ok {
			return list
		}
	}
	if len(envelope) == 1 {
		for _, value := range envelope {
			if list, ok := value.([]any); ok {
				return list
			}
		}
	}
	return nil
}

// MapRecordsResponse converts a decoded v1 response body into flat records.
// List envelopes are unwrapped; a bare object is treated as a single record.
func (b *Backend) MapRecordsResponse(responseData any, query *endpoint.Query, queryData endpoint.Record) []endpoint.Record {
	return b.mapRecordsForResource(responseData, query.Resource())
}

func (b *Backend) mapRecordsForResource(responseData any, resource *endpoint.Resource) []endpoint.Record {
	if entries := extractRecords(responseData); entries != nil {
		return b.mapToModel(entries, resource)
	}
	if record, ok := responseData.(map[string]any); ok {
		return b.mapToModel([]any{record}, resource)
	}
	return nil
}

// mapToModel applies casing conversion and per-resource field renames.
func (b *Backend) mapToModel(entries []any, resource *endpoint.Resource) []endpoint.Record {
	records := make([]endpoint.Record, 0, len(entries))
	for _, entry := range entries {
		raw, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		record := endpoint.ConvertKeys(raw, b.config.apiCasing, b.config.modelCasing)
		if resource != nil {
			for apiName, modelName := range resource.APIToModel {
				if value, exists := record[apiName]; exists {
					delete(record, apiName)
					record[modelName] = value
				}
			}
		}
		records = append(records, record)
	}
	return records
}

// =============================================================================
// PAGINATION
// =============================================================================

// PaginationToRequestParameters renders the query's pagination state as
// request parameters.
func (b *Backend) PaginationToRequestParameters(query *endpoint.Query) (url.Values, endpoint.Record) {
	params := url.Values{}
	for key, value := range query.Pagination() {
		params.Set(key, fmt.Sprintf("%v", value))
	}
	if query.Limit() > 0 {
		params.Set(b.config.LimitParameterName, strconv.Itoa(query.Limit()))
	}
	return params, endpoint.Record{}
}

// NextPageData extracts the next page number from a response. A full page
// advances the page counter; a short page ends pagination.
func (b *Backend) NextPageData(query *endpoint.Query, resp *http.Response) map[string]any {
	return b.paginator.NextPageData(http.PageState{
		Parameters: query.Pagination(),
		Limit:      query.Limit(),
	}, resp)
}

// =============================================================================
// QUERY
// =============================================================================

// Query fetches one page of records and advances the query's pagination
// state from the response.
func (b *Backend) Query(ctx context.Context, query *endpoint.Query) ([]endpoint.Record, error) {
	if err := query.Err(); err != nil {
		return nil, err
	}
	resource := query.Resource()
	if !resource.CanQuery {
		return nil, fmt.Errorf("resource %s does not support querying", resource.Name)
	}

	path, used, err := resource.ResolvePath(query.Conditions())
	if err != nil {
		return nil, err
	}

	params, _ := b.PaginationToRequestParameters(query)
	consumed := toSet(used)
	for field, value := range query.Conditions() {
		if consumed[field] {
			continue
		}
		if field == resource.IDColumnName() {
			path = path + "/" + value
			continue
		}
		params.Set(endpoint.ConvertCase(field, b.config.modelCasing, b.config.apiCasing), value)
	}

	resp, err := b.client.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	records := b.MapRecordsResponse(resp.Decoded(), query, nil)
	query.MergePagination(b.NextPageData(query, resp))
	return records, nil
}

// Records returns an iterator fetching pages until a short page arrives.
func (b *Backend) Records(ctx context.Context, query *endpoint.Query) endpoint.Iterator[endpoint.Record] {
	return endpoint.NewRecordIterator(ctx, query, b.Query)
}

// =============================================================================
// WRITES
// =============================================================================

// Create creates a resource instance. Import resources take the Location
// header flow instead of decoding a body.
func (b *Backend) Create(ctx context.Context, data endpoint.Record, resource *endpoint.Resource) (endpoint.Record, error) {
	if !resource.CanCreate {
		return nil, fmt.Errorf("resource %s does not support creation", resource.Name)
	}

	path, used, err := resource.ResolvePath(stringValues(data))
	if err != nil {
		return nil, err
	}
	body := b.writePayload(data, used, resource)

	if resource.RequestStyle == endpoint.RequestStyleImport {
		return b.createImportJob(ctx, path, body)
	}

	resp, err := b.client.Post(ctx, path, nil, body)
	if err != nil {
		return nil, err
	}
	return firstRecord(b.mapRecordsForResource(resp.Decoded(), resource)), nil
}

// Update modifies a resource instance. The v1 API replaces the record, so
// updates go out as PUT. The current record supplies routing values the
// update data may omit.
func (b *Backend) Update(ctx context.Context, id string, data endpoint.Record, current endpoint.Record, resource *endpoint.Resource) (endpoint.Record, error) {
	if !resource.CanUpdate {
		return nil, fmt.Errorf("resource %s does not support updates", resource.Name)
	}

	routing := stringValues(current)
	for key, value := range stringValues(data) {
		routing[key] = value
	}
	path, used, err := resource.ResolvePath(routing)
	if err != nil {
		return nil, err
	}

	body := b.writePayload(data, used, resource)
	resp, err := b.client.Put(ctx, path+"/"+id, nil, body)
	if err != nil {
		return nil, err
	}
	return firstRecord(b.mapRecordsForResource(resp.Decoded(), resource)), nil
}

// Delete removes a resource instance.
func (b *Backend) Delete(ctx context.Context, id string, data endpoint.Record, resource *endpoint.Resource) error {
	if !resource.CanDelete {
		return fmt.Errorf("resource %s does not support deletion", resource.Name)
	}

	path, _, err := resource.ResolvePath(stringValues(data))
	if err != nil {
		return err
	}

	_, err = b.client.Delete(ctx, path+"/"+id, nil)
	return err
}

// =============================================================================
// HELPERS
// =============================================================================

// writePayload prepares outgoing data: routing parameters consumed by the
// path template are stripped and field names converted to the API's casing.
func (b *Backend) writePayload(data endpoint.Record, used []string, resource *endpoint.Resource) endpoint.Record {
	payload := make(endpoint.Record, len(data))
	consumed := toSet(used)
	for key, value := range data {
		if consumed[key] {
			continue
		}
		payload[key] = value
	}

	payload = endpoint.ConvertKeys(payload, b.config.modelCasing, b.config.apiCasing)
	for apiName, modelName := range resource.APIToModel {
		if value, exists := payload[modelName]; exists {
			delete(payload, modelName)
			payload[apiName] = value
		}
	}
	return payload
}

func firstRecord(records []endpoint.Record) endpoint.Record {
	if len(records) == 0 {
		return nil
	}
	return records[0]
}

func stringValues(record endpoint.Record) map[string]string {
	values := make(map[string]string, len(record))
	for key, value := range record {
		if s, ok := value.(string); ok {
			values[key] = s
		}
	}
	return values
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, key := range keys {
		set[key] = true
	}
	return set
}
