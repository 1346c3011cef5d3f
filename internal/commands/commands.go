package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/ucsc-xena/xena-gdc/internal/gdc"
)

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }

// GDCPortal is the slice of gdc.Service the query commands use.
//
//counterfeiter:generate -o ./fakes/gdc_portal.go --fake-name GDCPortal . GDCPortal
type GDCPortal interface {
	Projects(ctx context.Context) ([]string, error)
	FileIDs(ctx context.Context, filter gdc.Filter) ([]string, error)
	Labels(ctx context.Context, uuids []string, labelField string) (map[string]string, error)
	Status(ctx context.Context) (gdc.Status, error)
}

// encodeOutput renders query results in the format the user asked for.
// The yaml encoder round-trips through json, so output structs only
// carry json tags.
func encodeOutput(format string, v any) ([]byte, error) {
	switch format {
	case "json":
		return json.Marshal(v)
	case "yaml":
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("unknown format %q: expected json or yaml", format)
	}
}
