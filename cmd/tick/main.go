// Command tick is the command line client for the Tick time-tracking API.
//
// Usage:
//
//	TICK_SUBSCRIPTION_ID=acme TICK_API_TOKEN=... TICK_USER_AGENT="tick-cli (me@example.com)" tick clients
package main

import "github.com/nicou/tick-api/internal/cli"

func main() {
	cli.Execute()
}
