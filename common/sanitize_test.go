package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFields(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]interface{}
		want map[string]interface{}
	}{
		{
			name: "nil map",
			in:   nil,
			want: nil,
		},
		{
			name: "strips nil values",
			in: map[string]interface{}{
				"name":  "Ada",
				"phone": nil,
				"notes": "",
			},
			want: map[string]interface{}{
				"name":  "Ada",
				"notes": "",
			},
		},
		{
			name: "strips nested nil values",
			in: map[string]interface{}{
				"customer": map[string]interface{}{
					"name":    "Ada",
					"address": nil,
				},
				"items": []interface{}{
					map[string]interface{}{
						"description": "show",
						"unitPrice":   nil,
					},
				},
			},
			want: map[string]interface{}{
				"customer": map[string]interface{}{
					"name": "Ada",
				},
				"items": []interface{}{
					map[string]interface{}{
						"description": "show",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFields(tt.in))
		})
	}
}

func TestSanitizeFieldsIdempotent(t *testing.T) {
	in := map[string]interface{}{
		"name":  "Ada",
		"phone": nil,
		"address": map[string]interface{}{
			"city": "Berlin",
			"zip":  nil,
		},
	}

	once := SanitizeFields(in)
	twice := SanitizeFields(once)

	assert.Equal(t, once, twice)
}
