package v1

// BasePath is the route prefix of every version 1 endpoint
const BasePath = "/api/v1/rsa"

// Version of the REST API
const Version = "v1"
