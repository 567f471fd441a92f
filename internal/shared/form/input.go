package form

import "net/url"

// InputFrom takes the first submitted value of every field. Repeated fields
// keep their first occurrence.
func InputFrom(values url.Values) map[string]string {
	input := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			input[k] = v[0]
		}
	}
	return input
}
