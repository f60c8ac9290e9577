package httpapi

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/alexanderramin/notedir/internal/contract"
)

// queryInt reads an integer query parameter, returning def when absent.
// A present but non-numeric value is an error, not a silent default.
func queryInt(values url.Values, name string, def int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return n, nil
}

// queryBool reads a boolean query parameter, nil when absent.
func queryBool(values url.Values, name string) (*bool, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &b, nil
}

// parseListRequest reads the skip/limit/sort listing parameters shared
// by the collection endpoints.
func parseListRequest(values url.Values) (contract.ListRequest, error) {
	skip, err := queryInt(values, "skip", 0)
	if err != nil {
		return contract.ListRequest{}, err
	}
	limit, err := queryInt(values, "limit", 0)
	if err != nil {
		return contract.ListRequest{}, err
	}
	return contract.ListRequest{
		Skip:  skip,
		Limit: limit,
		Sort:  values.Get("sort"),
	}, nil
}
