// Package relay provides the HTTP implementation of domain.RelayClient:
// posting finished text to a single configured downstream endpoint.
//
// Each post is a JSON payload {id, text, sent_at} with a fresh UUID.
// When a shared secret is configured the body is signed with HMAC-SHA256
// into the X-Signature-256 header; Verify checks the same signature on
// the receiving side.
//
// Delivery results are classified by how far the request got: accepted
// (2xx), rejected (4xx), failed (5xx), or unreachable when no HTTP
// response arrived at all. The caller decides what to retry; this client
// never does.
package relay
