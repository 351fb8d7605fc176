package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/restomate/poscli/internal/client"
	"github.com/restomate/poscli/internal/models"
)

// registerClient embeds the client interface so only Register needs a body.
type registerClient struct {
	client.Client
	got models.UserCreate
	err error
}

func (c *registerClient) Register(ctx context.Context, user models.UserCreate) (*models.User, error) {
	c.got = user
	if c.err != nil {
		return nil, c.err
	}
	return &models.User{ID: 1, Username: user.Username, Role: user.Role}, nil
}

func stubPrompts(t *testing.T, answers []string, password string) {
	t.Helper()
	oldText, oldPass := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = oldText, oldPass })
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
}

func TestRegister_DefaultsToWaiter(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t, []string{"anna", "anna@example.com", "Anna Smith"}, "pw123")

	api := &registerClient{}
	a := &App{api: api}

	err := a.Register(context.Background())
	require.NoError(t, err)

	require.Equal(t, "anna", api.got.Username)
	require.Equal(t, "anna@example.com", api.got.Email)
	require.Equal(t, "Anna Smith", api.got.FullName)
	require.Equal(t, "pw123", api.got.Password)
	require.Equal(t, models.RoleWaiter, api.got.Role)
}
