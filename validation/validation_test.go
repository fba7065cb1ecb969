package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Validate_Trims_And_Normalizes(t *testing.T) {
	req := require.New(t)

	raw := map[string]string{
		"name":        "  Pen  ",
		"description": "Blue ink pen\n",
	}
	normalized, fieldErrors := Validate(raw, ItemSchema())
	req.Nil(fieldErrors)
	req.Equal("Pen", normalized["name"])
	req.Equal("Blue ink pen", normalized["description"])
	req.Len(normalized, 2)
}

func Test_Validate_Reports_Every_Missing_Field(t *testing.T) {
	req := require.New(t)

	normalized, fieldErrors := Validate(map[string]string{}, ItemSchema())
	req.Nil(normalized)
	req.Len(fieldErrors, 2)
	req.Equal([]string{"is required"}, fieldErrors["name"])
	req.Equal([]string{"is required"}, fieldErrors["description"])
}

func Test_Validate_Whitespace_Only_Is_Missing(t *testing.T) {
	req := require.New(t)

	raw := map[string]string{
		"name":        "   ",
		"description": "HB pencil",
	}
	normalized, fieldErrors := Validate(raw, ItemSchema())
	req.Nil(normalized)
	req.Len(fieldErrors, 1)
	req.Contains(fieldErrors, "name")
}

func Test_Validate_Ignores_Unknown_Fields(t *testing.T) {
	req := require.New(t)

	raw := map[string]string{
		"name":        "Pen",
		"description": "Blue ink pen",
		"color":       "blue",
	}
	normalized, fieldErrors := Validate(raw, ItemSchema())
	req.Nil(fieldErrors)
	req.Len(normalized, 2)
	req.NotContains(normalized, "color")
}

func Test_Validate_Is_Pure(t *testing.T) {
	req := require.New(t)

	raw := map[string]string{"name": "  Pen  "}
	_, fieldErrors := Validate(raw, ItemSchema())
	req.NotNil(fieldErrors)
	req.Equal("  Pen  ", raw["name"])
}

func Test_Error_Message_Lists_Fields(t *testing.T) {
	req := require.New(t)

	err := &Error{Fields: FieldErrors{
		"name":        {"is required"},
		"description": {"is required"},
	}}
	req.Equal("validation failed: description is required; name is required", err.Error())
}
