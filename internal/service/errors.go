package service

import "errors"

// ErrInvalidArgument is wrapped by operations rejecting caller input:
// bad paging values, unknown sort keys, empty required fields. The HTTP
// boundary maps it to 400; repository.ErrNotFound maps to 404; anything
// else is a store failure and maps to 500.
var ErrInvalidArgument = errors.New("invalid argument")
