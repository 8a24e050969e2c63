package render

import (
	"fmt"
	"html/template"

	"go.trai.ch/zerr"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// funcs returns the template functions bound to this render's locale and phrase table.
func (rc *renderContext) funcs() template.FuncMap {
	printer := message.NewPrinter(rc.locale.Tag)

	return template.FuncMap{
		"i18n":  rc.phrase,
		"lang":  func() string { return rc.locale.ID },
		"tld":   rc.locale.TLD,
		"apply": rc.apply,
		"attr":  attr,
		"number": func(v any) (string, error) {
			switch n := v.(type) {
			case int:
				return printer.Sprintf("%v", number.Decimal(n)), nil
			case int64:
				return printer.Sprintf("%v", number.Decimal(n)), nil
			case float64:
				return printer.Sprintf("%v", number.Decimal(n)), nil
			default:
				return "", zerr.With(zerr.New("number: unsupported value"), "type", fmt.Sprintf("%T", v))
			}
		},
	}
}

// phrase looks up a phrase by its key path. A missing phrase renders as the last key.
func (rc *renderContext) phrase(keys ...string) string {
	if len(keys) == 0 {
		return ""
	}
	var cur any = rc.phrases
	for _, key := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return keys[len(keys)-1]
		}
		if cur, ok = m[key]; !ok {
			return keys[len(keys)-1]
		}
	}
	switch v := cur.(type) {
	case string:
		return v
	case nil:
		return keys[len(keys)-1]
	default:
		return fmt.Sprint(v)
	}
}

// attr returns obj[key] when obj is an object, nil otherwise.
func attr(obj any, key string) any {
	if m, ok := obj.(map[string]any); ok {
		return m[key]
	}
	return nil
}
