// Package browser serves the two endpoints a frontend needs to run the
// browser SDK against the same project as the server.
//
// ConfigHandler answers GET with the public SDK options (DSN, release,
// environment, tracing and replay settings) as JSON so the frontend can
// initialise without a build-time copy of the configuration.
//
// ErrorIntakeHandler accepts POSTed error reports from the frontend:
//
//	{"source": "handler", "name": "FetchError", "message": "Not Found",
//	 "statusCode": 404, "context": {"component": "UserList"}}
//
// Reports with source "handler" come from the framework error handler and
// honour the ignore-list. Reports with source "app" are always captured.
// Every accepted report is answered with 202.
package browser
