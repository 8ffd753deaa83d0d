package shell

// LookPath exports lookPath for white-box testing.
var LookPath = lookPath
