package routerhandlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/go-strada/strada/router"
)

// RouteListFormat selects the encoding RouteListHandler serves.
type RouteListFormat int

const (
	RouteListJSON RouteListFormat = iota
	RouteListYAML
)

// RouteListConfig configures the RouteListHandler behaviour.
type RouteListConfig struct {
	// Format selects the response encoding (default RouteListJSON).
	Format RouteListFormat
}

// routeListDocument wraps the route table for serialization.
type routeListDocument struct {
	Routes []router.RouteInfo `json:"routes" yaml:"routes"`
}

// RouteListHandler returns a handler that serves the router's registered
// routes as JSON or YAML, in the canonical method order. The document is
// built once on first request and cached, so the handler should only be
// requested after registration is complete.
func RouteListHandler(r *router.Router, cfg RouteListConfig) http.Handler {
	var (
		once        sync.Once
		data        []byte
		contentType string
		buildErr    error
	)

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			doc := routeListDocument{Routes: r.RouteList()}

			switch cfg.Format {
			case RouteListYAML:
				contentType = "application/x-yaml"
				data, buildErr = yaml.Marshal(doc)
			default:
				contentType = "application/json"
				data, buildErr = json.MarshalIndent(doc, "", "  ")
			}
		})

		if buildErr != nil {
			http.Error(w, "failed to serialize route list", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}
