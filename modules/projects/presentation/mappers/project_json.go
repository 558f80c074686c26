package mappers

import (
	"bytes"
	"strconv"

	"github.com/iota-uz/projects-export/modules/projects/domain/aggregates/project"
	"github.com/iota-uz/projects-export/pkg/jsonutil"
)

// ProjectsToJSON renders projects as one compact JSON array. Keys keep a
// fixed order and null text fields render as "".
func ProjectsToJSON(projects []project.Project) []byte {
	var buf bytes.Buffer
	buf.Grow(64 + len(projects)*256)
	buf.WriteByte('[')
	for i, p := range projects {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeProject(&buf, p)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func writeProject(buf *bytes.Buffer, p project.Project) {
	buf.WriteString(`{"id":`)
	buf.WriteString(strconv.FormatInt(p.ID(), 10))
	writeStringField(buf, "slug", p.Slug())
	writeStringField(buf, "title", p.Title())
	writeStringField(buf, "type", p.Type())
	writeStringField(buf, "summary", p.Summary())
	writeStringField(buf, "tags", p.Tags())
	writeStringField(buf, "sourceUrl", p.SourceURL())
	writeStringField(buf, "demoUrl", p.DemoURL())
	writeStringField(buf, "previewImage", p.PreviewImage())
	writeStringField(buf, "status", p.Status())
	buf.WriteString(`,"sortOrder":`)
	if v, ok := p.SortOrder(); ok {
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	} else {
		buf.WriteString("null")
	}
	buf.WriteByte('}')
}

func writeStringField(buf *bytes.Buffer, key, value string) {
	buf.WriteString(`,"`)
	buf.WriteString(key)
	buf.WriteString(`":`)
	jsonutil.WriteString(buf, value)
}
