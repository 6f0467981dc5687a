package renderers

import (
	"bytes"
	"context"

	"github.com/dejo1307/repomap/internal/model"
	"github.com/dejo1307/repomap/internal/report"
)

// JSON renders the report as its JSON document.
type JSON struct {
	Pretty bool
}

func (JSON) Name() string {
	return "json"
}

func (JSON) MIMEType() string {
	return "application/json"
}

func (j JSON) Render(_ context.Context, r *model.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := report.Encode(&buf, r, j.Pretty); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
