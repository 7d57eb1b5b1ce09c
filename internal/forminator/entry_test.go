package forminator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenderLabel(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"male code", "M", "Masculin / Male"},
		{"female code", "F", "Féminin / Female"},
		{"already a label", "Masculin / Male", "Masculin / Male"},
		{"unknown passes through", "X", "X"},
		{"lowercase is not a code", "m", "m"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, genderLabel(tt.code))
		})
	}
}
