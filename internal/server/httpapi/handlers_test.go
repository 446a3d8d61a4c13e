package httpapi

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tafuta/internal/client/authapi"
	"github.com/dmitrijs2005/tafuta/internal/common"
)

func setupServer(t *testing.T) (*authapi.Mock, *authapi.HTTPClient) {
	t.Helper()

	mock := authapi.NewMock(nil)
	mock.SetDelays(0, 0)

	srv := httptest.NewServer(NewRouter(mock, nil))
	t.Cleanup(srv.Close)

	return mock, authapi.NewHTTPClient(srv.URL)
}

func TestHTTPRoundTrip_Login(t *testing.T) {
	_, client := setupServer(t)

	res, err := client.Login(context.Background(), "TEST@EXAMPLE.COM", "x")
	require.NoError(t, err)
	require.Equal(t, "fake-jwt-token-for-1", res.Token)
	require.Equal(t, "1", res.User.ID)
	require.Equal(t, "test@example.com", res.User.Email)
}

func TestHTTPRoundTrip_LoginInvalidCredentials(t *testing.T) {
	_, client := setupServer(t)

	res, err := client.Login(context.Background(), "nobody@example.com", "x")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.Nil(t, res)
}

func TestHTTPRoundTrip_Register(t *testing.T) {
	mock, client := setupServer(t)

	res, err := client.Register(context.Background(), "new@example.com", "x")
	require.NoError(t, err)
	require.Equal(t, "new@example.com", res.User.Email)
	require.Equal(t, common.TokenPrefix+res.User.ID, res.Token)
	require.Equal(t, 2, mock.Len())
}

func TestHTTPRoundTrip_RegisterDuplicate(t *testing.T) {
	mock, client := setupServer(t)

	_, err := client.Register(context.Background(), "new@example.com", "x")
	require.NoError(t, err)

	res, err := client.Register(context.Background(), "NEW@example.com", "y")
	require.ErrorIs(t, err, common.ErrDuplicateAccount)
	require.Nil(t, res)
	require.Equal(t, 2, mock.Len())
}

func TestHTTPRoundTrip_Logout(t *testing.T) {
	mock, client := setupServer(t)

	require.NoError(t, client.Logout(context.Background()))
	require.Equal(t, 1, mock.CallCount("logout"))
}

func TestHTTP_BadRequestBody(t *testing.T) {
	mock := authapi.NewMock(nil)
	mock.SetDelays(0, 0)
	srv := httptest.NewServer(NewRouter(mock, nil))
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Post(srv.URL+"/api/login", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 400, resp.StatusCode)
}

func TestHTTP_Health(t *testing.T) {
	mock := authapi.NewMock(nil)
	srv := httptest.NewServer(NewRouter(mock, nil))
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
}
