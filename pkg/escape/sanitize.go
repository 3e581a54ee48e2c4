package escape

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-stache/pkg/filter"
	"github.com/goliatone/go-stache/pkg/value"
)

// HTMLSanitizer returns a filter that runs the display string of its
// argument through policy and yields the result as pre-escaped markup, so
// the surrounding default pipeline will not escape it a second time.
func HTMLSanitizer(policy *bluemonday.Policy) value.Filter {
	return filter.Func(func(v value.Value) (value.Value, error) {
		safe := policy.Sanitize(v.String())
		return value.BoxObject(value.RenderFunc(func(value.RenderingInfo) (value.Rendering, error) {
			return value.Rendering{Text: safe, ContentType: value.ContentTypeMarkup}, nil
		})), nil
	})
}
