package dto

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campuserp/internal/app/models"
)

func TestUpdateSettingsRequestApply(t *testing.T) {
	var req UpdateSettingsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"dark","notifications":{"sms":true,"email":false}}`), &req))

	s := models.DefaultSettings()
	req.Apply(&s)

	assert.Equal(t, models.ThemeDark, s.Theme)
	assert.True(t, s.Notifications.SMS)
	assert.False(t, s.Notifications.Email)
	// untouched
	assert.True(t, s.Notifications.Push)
	assert.Equal(t, models.DefaultSettings().Privacy, s.Privacy)
}

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(LoginRequest{Email: "not-an-email", Password: "x", Role: "dean"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)

	fields, ok := detail.Details.([]FieldError)
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "email must be a valid email address", fields[0].Message)
	assert.Equal(t, "role", fields[1].Field)
	assert.Equal(t, "role must be one of: student staff admin", fields[1].Message)
}

func TestHandleValidationErrorSingleField(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(LoginRequest{Email: "alex@student.edu", Role: "student"})
	detail := HandleValidationError(err)
	assert.Equal(t, "password", detail.Field)
}

func TestHandleValidationErrorSyntax(t *testing.T) {
	var req LoginRequest
	err := json.Unmarshal([]byte(`{"email":`), &req)
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, "Invalid request format", detail.Message)
}
