package item

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name          string
		draft         Draft
		wantField     string
		wantViolation string
	}{
		{
			name:  "valid draft",
			draft: Draft{Name: "widget", Description: "a widget"},
		},
		{
			name:  "empty description is valid",
			draft: Draft{Name: "widget"},
		},
		{
			name:          "empty name rejected",
			draft:         Draft{Name: ""},
			wantField:     "name",
			wantViolation: ViolationRequired,
		},
		{
			name:          "whitespace-only name rejected",
			draft:         Draft{Name: "   "},
			wantField:     "name",
			wantViolation: ViolationRequired,
		},
		{
			name:          "overlong name rejected",
			draft:         Draft{Name: strings.Repeat("x", maxNameLength+1)},
			wantField:     "name",
			wantViolation: ViolationMaxLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tt.wantField, verr.Violations[0].Field)
			assert.Equal(t, tt.wantViolation, verr.Violations[0].Code)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	empty := ""
	name := "widget"

	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, ValidatePatch(Patch{}))
	})

	t.Run("explicit empty description is valid", func(t *testing.T) {
		assert.NoError(t, ValidatePatch(Patch{Description: &empty}))
	})

	t.Run("name set to empty rejected", func(t *testing.T) {
		err := ValidatePatch(Patch{Name: &empty})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Violations, 1)
		assert.Equal(t, "name", verr.Violations[0].Field)
		assert.Equal(t, ViolationRequired, verr.Violations[0].Code)
	})

	t.Run("valid name accepted", func(t *testing.T) {
		assert.NoError(t, ValidatePatch(Patch{Name: &name}))
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Violations: []FieldViolation{
		{Field: "name", Code: ViolationRequired, Message: "name must not be empty"},
	}}
	assert.Contains(t, err.Error(), "name must not be empty")
}
