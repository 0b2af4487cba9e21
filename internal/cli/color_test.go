package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHelpers(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) string
		input string
	}{
		{"Primary", Primary, "PPP H40"},
		{"Error", Error, "import failed"},
		{"Warning", Warning, "no hangs"},
		{"Info", Info, "saved"},
		{"Silent", Silent, "Feb 1"},
		{"Text", Text, "30 push-ups"},
		{"Off", Off, "OFF"},
		{"Active", Active, "30·1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(tt.input)
			assert.NotEmpty(t, result)
			assert.Contains(t, result, tt.input)
		})
	}
}
