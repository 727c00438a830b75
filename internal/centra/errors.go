package centra

import (
	"errors"
	"fmt"
	"strings"
)

// GraphQLError is a single entry of the "errors" array in an API response.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// QueryError is returned when the API answered with a structured error list
// instead of data.
type QueryError struct {
	Errors []GraphQLError
}

func (e *QueryError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return fmt.Sprintf("graphql query error: %s", strings.Join(msgs, "; "))
}

// FetchError aborts a paginated fetch. It carries the stage name and the page
// on which the underlying transport or query error occurred, so the caller
// can tell which part of the pipeline failed and where.
type FetchError struct {
	Stage string
	Page  int
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: fetch failed on page %d: %v", e.Stage, e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AsFetchError unwraps err into a *FetchError when one is in the chain.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
