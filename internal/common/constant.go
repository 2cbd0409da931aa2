package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential
// on requests to guarded routes.
const AuthorizationHeaderName = "Authorization"
