package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type registerRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Username string `json:"username" validate:"required,username"`
	}

	tests := []struct {
		name      string
		req       registerRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request",
			req: registerRequest{
				Email:    "a@b.com",
				Password: "secret1",
				Username: "newuser",
			},
			wantErr: false,
		},
		{
			name: "missing email",
			req: registerRequest{
				Password: "secret1",
				Username: "newuser",
			},
			wantErr:   true,
			wantField: "email",
		},
		{
			name: "malformed email",
			req: registerRequest{
				Email:    "not-an-email",
				Password: "secret1",
				Username: "newuser",
			},
			wantErr:   true,
			wantField: "email",
		},
		{
			name: "short password",
			req: registerRequest{
				Email:    "a@b.com",
				Password: "pw",
				Username: "newuser",
			},
			wantErr:   true,
			wantField: "password",
		},
		{
			name: "uppercase username",
			req: registerRequest{
				Email:    "a@b.com",
				Password: "secret1",
				Username: "NewUser",
			},
			wantErr:   true,
			wantField: "username",
		},
		{
			name: "short username",
			req: registerRequest{
				Email:    "a@b.com",
				Password: "secret1",
				Username: "ab",
			},
			wantErr:   true,
			wantField: "username",
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, validationErr.Errors, tt.wantField)
		})
	}
}

func TestPostTitleRule(t *testing.T) {
	type publishRequest struct {
		Title string `json:"title" validate:"required,post_title"`
	}

	v := New()

	assert.NoError(t, v.Validate(publishRequest{Title: "Hello World"}))
	assert.Error(t, v.Validate(publishRequest{Title: "   "}))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("new_user1"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("New-User"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.com"))
	assert.False(t, IsValidEmail("missing-at"))
}
