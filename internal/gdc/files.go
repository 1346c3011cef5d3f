package gdc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Projects lists the project ids of every project in GDC. The projects
// endpoint is paginated, so a first small request learns the total and
// a second request asks for exactly that many hits.
func (service Service) Projects(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, ErrCouldNotCreateRequest
	}

	var first struct {
		Data struct {
			Pagination pagination `json:"pagination"`
		} `json:"data"`
	}
	res, err := service.Do(req)
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(res, &first); err != nil {
		return nil, err
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, ErrCouldNotCreateRequest
	}
	query := make(url.Values)
	query.Set("size", strconv.Itoa(first.Data.Pagination.Total))
	query.Set("fields", "project_id")
	req.URL.RawQuery = query.Encode()

	var listing struct {
		Data struct {
			Hits []struct {
				ProjectID string `json:"project_id"`
			} `json:"hits"`
		} `json:"data"`
	}
	res, err = service.Do(req)
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(res, &listing); err != nil {
		return nil, err
	}

	projects := make([]string, 0, len(listing.Data.Hits))
	for _, hit := range listing.Data.Hits {
		projects = append(projects, hit.ProjectID)
	}
	return projects, nil
}

// FileHit is one file record from the files endpoint.
type FileHit struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	MD5Sum   string `json:"md5sum"`
	FileSize int64  `json:"file_size"`
}

// FileIDs returns the UUID of every file matching the filter. Like the
// original two step query, the first request learns the total and the
// second fetches that many hits.
func (service Service) FileIDs(ctx context.Context, filter Filter) ([]string, error) {
	hits, err := service.SearchFiles(ctx, filter, []string{"file_id"})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.FileID)
	}
	return ids, nil
}

// SearchFiles returns every file record matching the filter with the
// requested fields populated.
func (service Service) SearchFiles(ctx context.Context, filter Filter, fields []string) ([]FileHit, error) {
	params, err := fileQueryParams(filter, fields)
	if err != nil {
		return nil, err
	}

	var first struct {
		Data struct {
			Pagination pagination `json:"pagination"`
		} `json:"data"`
	}
	res, err := service.postForm(ctx, "/files", params)
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(res, &first); err != nil {
		return nil, err
	}

	params.Set("size", strconv.Itoa(first.Data.Pagination.Total))

	var listing struct {
		Data struct {
			Hits []FileHit `json:"hits"`
		} `json:"data"`
	}
	res, err = service.postForm(ctx, "/files", params)
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(res, &listing); err != nil {
		return nil, err
	}

	return listing.Data.Hits, nil
}

// Labels queries the files endpoint for the label field of each given
// file and returns a map from label to file UUID. Nested label values
// unwrap to their first element, so for example
// cases.samples.submitter_id yields the first sample's submitter id.
func (service Service) Labels(ctx context.Context, uuids []string, labelField string) (map[string]string, error) {
	if labelField == "" {
		return nil, ErrLabelFieldMustBeSet
	}
	if len(uuids) == 0 {
		return map[string]string{}, nil
	}

	params, err := fileQueryParams(In{Field: "file_id", Values: uuids}, []string{"file_id", labelField})
	if err != nil {
		return nil, err
	}
	params.Set("size", strconv.Itoa(len(uuids)))

	var listing struct {
		Data struct {
			Hits []map[string]any `json:"hits"`
		} `json:"data"`
	}
	res, err := service.postForm(ctx, "/files", params)
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(res, &listing); err != nil {
		return nil, err
	}

	labelKey, _, _ := strings.Cut(labelField, ".")
	labels := make(map[string]string, len(listing.Data.Hits))
	for _, hit := range listing.Data.Hits {
		uuid, ok := hit["file_id"].(string)
		if !ok {
			continue
		}
		label, ok := unwrapLabel(hit[labelKey])
		if !ok {
			return nil, fmt.Errorf("file %s has no value for label field %q", uuid, labelField)
		}
		labels[label] = uuid
	}
	return labels, nil
}

// unwrapLabel digs a scalar out of the nested hit structure: lists
// unwrap to their first element and maps to the value of their first
// key in sorted order.
func unwrapLabel(v any) (string, bool) {
	for {
		switch val := v.(type) {
		case []any:
			if len(val) == 0 {
				return "", false
			}
			v = val[0]
		case map[string]any:
			if len(val) == 0 {
				return "", false
			}
			keys := make([]string, 0, len(val))
			for k := range val {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			v = val[keys[0]]
		case string:
			return val, true
		case nil:
			return "", false
		default:
			return fmt.Sprintf("%v", val), true
		}
	}
}

func fileQueryParams(filter Filter, fields []string) (url.Values, error) {
	params := make(url.Values)
	if filter != nil {
		filterJSON, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("could not marshal query filter: %w", err)
		}
		params.Set("filters", string(filterJSON))
	}
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}
	return params, nil
}

func (service Service) postForm(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, ErrCouldNotCreateRequest
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return service.Do(req)
}
