// Package slack is a small typed client for the Slack Web API, covering
// chat.postMessage and chat.delete.
//
// A Client is created once with a bot token and may be shared freely:
//
//	client := slack.New(os.Getenv("SLACK_TOKEN"))
//
//	ts, err := client.PostMessageText("C123456", "Hello, Slack!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Delete("C123456", ts); err != nil {
//	    log.Fatal(err)
//	}
//
// Every operation exists in a blocking form and a context form
// (e.g. [Client.PostMessage] and [Client.PostMessageContext]); the context
// form supports cancellation and deadlines and is the one to use inside
// request handlers.
//
// # Errors
//
// All failures are returned as [*APIError] with one of two kinds:
// [KindInvalidArgument] for precondition violations and response bodies that
// do not match the API contract, and [KindHTTPRequestFailed] for transport
// failures and non-2xx statuses. Use [IsInvalidArgument] and
// [IsHTTPRequestFailed] to classify wrapped errors. Nothing is retried or
// logged internally; posting twice with identical arguments posts twice.
package slack
