// Package api is the HTTP gateway to the NXT account service.
//
// It exposes a narrow Client interface (login, OTP verification, signup,
// profile fetch/delete) and an HTTPClient implementation speaking JSON and,
// for signup, multipart/form-data. Gateways are deliberately thin: no retry,
// no caching, no interpretation of server messages beyond extracting the
// {"error": "..."} payload into a typed *Error. Policy decisions (which
// messages to surface, what is retryable) live in the service flows.
package api
