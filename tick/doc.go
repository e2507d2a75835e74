// Package tick is a typed client for the Tick v2 time-tracking API.
//
// Every client instance is constructed from its own credentials
// (subscription id, API token, user agent) and holds them by value, so
// independently configured clients can run calls concurrently without
// sharing any state:
//
//	api, err := tick.New(tick.Config{
//		SubscriptionID: "acme",
//		APIToken:       "token",
//		UserAgent:      "myapp/1.0 (me@example.com)",
//	})
//	if err != nil {
//		// every violated credential field is reported at once
//	}
//	clients, err := api.ListClients(ctx)
//
// Caller input is validated before any network call; response bodies are
// validated against the declared shapes after it. Failures surface as the
// typed errors in this package (ConfigurationError, ValidationError,
// ForbiddenError, ConflictError, RequestError, ResponseValidationError).
//
// Task and Entry ids are strings while User, Client and Project ids are
// integers. This mirrors the remote API and is intentional; the per-task
// entries listing even takes a numeric task id in the URL path.
package tick
