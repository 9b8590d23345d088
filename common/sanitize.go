package common

// SanitizeFields returns a copy of fields with every nil-valued key
// removed. Firestore rejects writes containing nil values coming from
// optional form fields, so every DAL passes its payload through here
// before persisting. Nested maps and slices are sanitized as well.
// Sanitizing an already-sanitized map yields an equal map.
func SanitizeFields(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return nil
	}

	out := make(map[string]interface{}, len(fields))

	for k, v := range fields {
		if v == nil {
			continue
		}

		switch t := v.(type) {
		case map[string]interface{}:
			out[k] = SanitizeFields(t)
		case []interface{}:
			out[k] = sanitizeSlice(t)
		default:
			out[k] = v
		}
	}

	return out
}

func sanitizeSlice(items []interface{}) []interface{} {
	out := make([]interface{}, 0, len(items))

	for _, v := range items {
		switch t := v.(type) {
		case map[string]interface{}:
			out = append(out, SanitizeFields(t))
		case []interface{}:
			out = append(out, sanitizeSlice(t))
		default:
			out = append(out, v)
		}
	}

	return out
}
