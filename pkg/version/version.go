package version

// Version is the library version, burned into the User-Agent of every
// outgoing request.
const Version = "v0.3.1"
