/*
Package handlers implements the HTTP API.

No endpoint requires authentication. Every response carries the headers
`Access-Control-Allow-Origin: *` and `Access-Control-Allow-Headers: X-Requested-With`.

Errors are returned as JSON: `{"error": "<message>", "kind": "<kind>"}`.
Validation errors additionally hold a `fields` array of
`{"field": "<name>", "error": "<reason>"}` objects.
*/
package handlers
