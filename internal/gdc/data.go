package gdc

import (
	"context"
	"net/http"
	"strings"
)

// Data requests the content of one file by UUID. The caller owns the
// response body; the file name is provided in the Content-Disposition
// header, see FileNameFromResponse.
func (service Service) Data(ctx context.Context, uuid string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/data/"+uuid, nil)
	if err != nil {
		return nil, ErrCouldNotCreateRequest
	}
	req.Header.Set("Accept", "*/*")

	res, err := service.Do(req)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(res); err != nil {
		closeAndIgnoreError(res.Body)
		return nil, err
	}
	return res, nil
}

// FileNameFromResponse reads the file name the data endpoint provides
// in the Content-Disposition header. The header value looks like
// "attachment; filename=name.tsv.gz"; everything after "filename=" is
// the name.
func FileNameFromResponse(res *http.Response) (string, bool) {
	contentDisp := res.Header.Get("Content-Disposition")
	marker := "filename="
	i := strings.Index(contentDisp, marker)
	if i < 0 {
		return "", false
	}
	name := contentDisp[i+len(marker):]
	name = strings.Trim(name, `"`)
	if name == "" {
		return "", false
	}
	return name, true
}
