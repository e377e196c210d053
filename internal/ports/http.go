package ports

import "net/http"

// HTTPDoer executes a single HTTP request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
