package gdc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

type stringError string

func (str stringError) Error() string { return string(str) }

const (
	ErrCouldNotCreateRequest = stringError("could not create valid http request")
	ErrLabelFieldMustBeSet   = stringError("label field must not be empty")
)

// Service wraps requests to api.gdc.cancer.gov.
type Service struct {
	// Target defaults to the public deployed endpoint.
	// It can be set to another host, for example a local
	// fake server in tests.
	Target string

	// Token should be set with a GDC authentication token when
	// querying controlled-access data. Open-access data needs none.
	// See: https://docs.gdc.cancer.gov/API/Users_Guide/Authentication_and_Authorization/
	Token string

	// Client allows you to inject an alternate client
	// (for testing per se). When not set, http.DefaultClient is used.
	Client *http.Client
}

func (service *Service) SetToken(token string) {
	service.Token = token
}

// Do sets required headers for requests to api.gdc.cancer.gov.
// If service.Client is nil, it uses http.DefaultClient.
func (service Service) Do(req *http.Request) (*http.Response, error) {
	if service.Target == "" {
		service.Target = "api.gdc.cancer.gov"
	}
	if service.Client == nil {
		service.Client = http.DefaultClient
	}

	if service.Token != "" {
		req.Header.Set("X-Auth-Token", service.Token)
	}

	if val := req.Header.Get("Accept"); val == "" {
		req.Header.Set("Accept", "application/json")
	}
	if val := req.Header.Get("User-Agent"); val == "" {
		req.Header.Set("User-Agent", "xena-gdc")
	}

	req.URL.Host = service.Target
	if req.URL.Scheme == "" {
		req.URL.Scheme = "https"
	}

	return service.Client.Do(req)
}

// pagination is the envelope GDC wraps every hit listing in.
type pagination struct {
	Count int `json:"count"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Size  int `json:"size"`
	From  int `json:"from"`
}

type ResponseStatusCodeError http.Response

func (err ResponseStatusCodeError) Error() string {
	return fmt.Sprintf("response to %s %s got status %d when a success was expected", err.Request.Method, err.Request.URL, err.StatusCode)
}

func checkResponse(res *http.Response) error {
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return (*ResponseStatusCodeError)(res)
	}
	return nil
}

func decodeResponse(res *http.Response, v any) error {
	defer closeAndIgnoreError(res.Body)

	if err := checkResponse(res); err != nil {
		return err
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading the api.gdc.cancer.gov response body failed: %s", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("json from %s is malformed: %s", res.Request.URL.Host, err)
	}

	return nil
}

// Status reports the GDC API status including the current data release.
// See: https://docs.gdc.cancer.gov/API/Users_Guide/Getting_Started/#api-status-check
type Status struct {
	Commit      string `json:"commit"`
	DataRelease string `json:"data_release"`
	Status      string `json:"status"`
	Tag         string `json:"tag"`
	Version     any    `json:"version"`
}

var dataReleaseExp = regexp.MustCompile(`\d+(?:\.\d+)?`)

// DataReleaseVersion extracts the release number from the human text in
// the data_release field, for example
// "Data Release 41.0 - August 28, 2023" parses as 41.0.
func (s Status) DataReleaseVersion() (*semver.Version, error) {
	match := dataReleaseExp.FindString(s.DataRelease)
	if match == "" {
		return nil, fmt.Errorf("no release number in data_release %q", s.DataRelease)
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("data_release %q is not a version: %w", s.DataRelease, err)
	}
	return v, nil
}

func (service Service) Status(ctx context.Context) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/status", nil)
	if err != nil {
		return Status{}, ErrCouldNotCreateRequest
	}

	res, err := service.Do(req)
	if err != nil {
		return Status{}, err
	}

	var status Status
	if err := decodeResponse(res, &status); err != nil {
		return Status{}, err
	}
	return status, nil
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
