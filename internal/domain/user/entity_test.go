//go:build unit

package user_test

import (
	"testing"

	"storefront/internal/domain/user"
	"storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("basic construction", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("jamie@example.com")
		expected := user.NewUser("Jamie Doe", email, "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456", user.RoleUser)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, user.RoleUser, actual.Role())
	})
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid address", input: "jamie@example.com", want: "jamie@example.com"},
		{name: "normalized to lower case", input: " Jamie@Example.COM ", want: "jamie@example.com"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "jamie.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "jamie@", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"user", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superadmin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("longenough")
	assert.NoError(t, err)

	_, err = user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestNewName(t *testing.T) {
	name, err := user.NewName("  Jamie Doe  ")
	require.NoError(t, err)
	assert.Equal(t, "Jamie Doe", name.Value())

	_, err = user.NewName("   ")
	assert.ErrorIs(t, err, user.ErrInvalidName)
}
