package snykrest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nucleus/snyk-core/internal/connector/http"
	"github.com/nucleus/snyk-core/internal/endpoint"
)

// =============================================================================
// SNYK REST BACKEND
// =============================================================================

// Ensure interface compliance
var _ endpoint.Backend = (*Backend)(nil)

// Backend executes queries and writes against the Snyk REST API.
type Backend struct {
	client     *http.Client
	config     *Config
	paginator  http.Paginator
	standard   RequestBuilder
	membership RequestBuilder
}

// New creates a Snyk REST backend with the given configuration.
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
		"Accept": "application/vnd.api+json",
	}

	return &Backend{
		client:     http.NewClient(clientConfig),
		config:     config,
		paginator:  &http.CursorPaginator{ParameterName: config.PaginationParameterName},
		standard:   attributesRequestBuilder{},
		membership: MembershipRequestBuilder{},
	}, nil
}

// =============================================================================
// RESPONSE MAPPING
// =============================================================================

// MapRecordsResponse converts a decoded REST response body into flat records.
// JSON:API envelopes are unwrapped and flattened; anything else passes through
// to the record mapper so non-JSON:API bodies keep working.
func (b *Backend) MapRecordsResponse(responseData any, query *endpoint.Query, queryData endpoint.Record) []endpoint.Record {
	return b.mapRecordsForResource(responseData, query.Resource())
}

func (b *Backend) mapRecordsForResource(responseData any, resource *endpoint.Resource) []endpoint.Record {
	shape, payload := detectShape(responseData)
	switch shape {
	case shapeResourceList:
		entries := payload.([]any)
		flattened := make([]any, 0, len(entries))
		for _, entry := range entries {
			flattened = append(flattened, flattenResource(entry))
		}
		return b.mapToModel(flattened, resource)
	case shapeResourceObject:
		return b.mapToModel([]any{flattenResource(payload)}, resource)
	default:
		if list, ok := payload.([]any); ok {
			return b.mapToModel(list, resource)
		}
		if record, ok := payload.(map[string]any); ok {
			return b.mapToModel([]any{record}, resource)
		}
		return nil
	}
}

// mapToModel applies casing conversion and per-resource field renames.
// Entries that are not objects are dropped here; flattening already passed
// them through unchanged for callers that want them.
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
// request parameters. The REST API requires a `version` parameter on every
// request, appended here unconditionally.
func (b *Backend) PaginationToRequestParameters(query *endpoint.Query) (url.Values, endpoint.Record) {
	params := url.Values{}
	for key, value := range query.Pagination() {
		params.Set(key, fmt.Sprintf("%v", value))
	}
	if query.Limit() > 0 {
		params.Set(b.config.LimitParameterName, strconv.Itoa(query.Limit()))
	}
	params.Set("version", b.config.APIVersion)
	return params, endpoint.Record{}
}

// NextPageData extracts the next pagination parameters from a response.
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
			// Addressing one instance: fetch the record URL directly.
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

// Records returns an iterator fetching pages until the cursor runs out.
func (b *Backend) Records(ctx context.Context, query *endpoint.Query) endpoint.Iterator[endpoint.Record] {
	return endpoint.NewRecordIterator(ctx, query, b.Query)
}

// =============================================================================
// WRITES
// =============================================================================

// Create creates a resource instance and returns the record the API answered
// with.
func (b *Backend) Create(ctx context.Context, data endpoint.Record, resource *endpoint.Resource) (endpoint.Record, error) {
	if !resource.CanCreate {
		return nil, fmt.Errorf("resource %s does not support creation", resource.Name)
	}

	path, used, err := resource.ResolvePath(stringValues(data))
	if err != nil {
		return nil, err
	}

	payload := b.writePayload(data, used, resource)
	body := b.builderFor(resource).BuildCreate(payload, resource)

	resp, err := b.client.Post(ctx, path, b.versionParameters(), body)
	if err != nil {
		return nil, err
	}
	return firstRecord(b.mapRecordsForResource(resp.Decoded(), resource)), nil
}

// Update modifies a resource instance. The current record supplies routing
// and context values the update data may omit.
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

	payload := b.writePayload(data, used, resource)
	body := b.builderFor(resource).BuildUpdate(id, payload, current, resource)

	resp, err := b.client.Patch(ctx, path+"/"+id, b.versionParameters(), body)
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

	_, err = b.client.Delete(ctx, path+"/"+id, b.versionParameters())
	return err
}

// =============================================================================
// HELPERS
// =============================================================================

// writePayload prepares outgoing data: routing parameters consumed by the
// path template are stripped for the standard flow, and field names are
// converted to the API's conventions. Relationship-style builders receive the
// full data because routing fields double as relationship context.
func (b *Backend) writePayload(data endpoint.Record, used []string, resource *endpoint.Resource) endpoint.Record {
	payload := make(endpoint.Record, len(data))
	consumed := toSet(used)
	for key, value := range data {
		if resource.RequestStyle == endpoint.RequestStyleStandard && consumed[key] {
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

func (b *Backend) builderFor(resource *endpoint.Resource) RequestBuilder {
	if resource.RequestStyle == endpoint.RequestStyleRelationships {
		return b.membership
	}
	return b.standard
}

func (b *Backend) versionParameters() url.Values {
	params := url.Values{}
	params.Set("version", b.config.APIVersion)
	return params
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
