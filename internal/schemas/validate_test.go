package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const skillsSchema = `{
	"type": "array",
	"items": {"type": "string", "minLength": 1},
	"minItems": 1
}`

func TestValidateJSONString_ValidDocument(t *testing.T) {
	err := ValidateJSONString(skillsSchema, `["Python", "SQL"]`)

	assert.NoError(t, err)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(skillsSchema, `{"not": "an array"}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSONString_EmptyArrayRejected(t *testing.T) {
	err := ValidateJSONString(skillsSchema, `[]`)

	assert.Error(t, err)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(skillsSchema, `[`)

	assert.Error(t, err)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := ValidateJSONString(skillsSchema, `[1, 2]`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
