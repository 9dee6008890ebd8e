package soap

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
)

// encodeValue writes one payload value under the given element name.
// Associative records become nested elements (keys sorted for deterministic
// output), lists repeat the element name once per member, scalars become
// text content.
func encodeValue(e *xml.Encoder, name string, v any) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	switch t := v.(type) {
	case map[string]any:
		if err := e.EncodeToken(start); err != nil {
			return err
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := encodeValue(e, k, t[k]); err != nil {
				return err
			}
		}
		return e.EncodeToken(start.End())
	case []any:
		for _, member := range t {
			if err := encodeValue(e, name, member); err != nil {
				return err
			}
		}
		return nil
	default:
		text, err := scalarText(v)
		if err != nil {
			return fmt.Errorf("element %s: %w", name, err)
		}
		return e.EncodeElement(text, start)
	}
}

func scalarText(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported payload type %T", v)
	}
}
