package fakes

import "net/http"

// RoundTripper records what the GDC portal would have received. The
// call count is kept because several queries need two round trips, a
// probe for the total and the full listing.
type RoundTripper struct {
	CallCount int

	Params struct {
		Req *http.Request
	}
	Results struct {
		Res *http.Response
		Err error
	}
}

func (mock *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	mock.CallCount++
	mock.Params.Req = req
	return mock.Results.Res, mock.Results.Err
}
