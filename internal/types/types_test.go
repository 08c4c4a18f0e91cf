package types

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"},
		},
		{
			name:    "missing name",
			request: RegisterRequest{Email: "ada@example.com", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			request: RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "short password",
			request: RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	valid := LoginRequest{Email: "ada@example.com", Password: "anything"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Email: "ada@example.com"}
	assert.Error(t, missing.Validate())
}

func TestDeleteHistoryRequest_Validation(t *testing.T) {
	valid := DeleteHistoryRequest{DocID: uuid.NewString()}
	assert.NoError(t, valid.Validate())

	malformed := DeleteHistoryRequest{DocID: "not-a-uuid"}
	assert.Error(t, malformed.Validate())

	empty := DeleteHistoryRequest{}
	assert.Error(t, empty.Validate())
}

func TestPreview_Truncation(t *testing.T) {
	short := "within the limit"
	assert.Equal(t, short, Preview(short))

	long := strings.Repeat("x", TextPreviewLimit+100)
	got := Preview(long)
	assert.Len(t, got, TextPreviewLimit+len("..."))
	assert.True(t, strings.HasSuffix(got, "..."))
}
