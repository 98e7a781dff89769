/*
Package vaultsdk is a Go client for the passvault HTTP API.

# Client vs Session

Client covers the public endpoints: health, registration and login. A
successful login returns a Session that carries the bearer token for every
other call:

	client := vaultsdk.NewClient("http://localhost:8080")

	_, err := client.Register(ctx, vaultsdk.RegisterRequest{
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "correct horse battery",
	})

	session, err := client.Login(ctx, "alice@example.com", "correct horse battery")

	vaults, err := session.ListVaults(ctx)
	entries, err := session.ListCredentials(ctx, vaults[0].ID)

# Expiry

Session tokens live for a fixed TTL and cannot be refreshed. Session.Expired
reports when a new login is needed; calls made after that fail with an
*APIError whose Code is ErrorCodeInvalidToken.

# Errors

Every non-2xx response is returned as an *APIError. Use the Is* helpers to
branch on the error code:

	if vaultsdk.IsAccessDenied(err) {
		// the vault or entry is not yours, or does not exist
	}
*/
package vaultsdk
