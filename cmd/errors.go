package cmd

import "errors"

// errInsecureFound signals that the audit completed and at least one domain
// effectively permits plaintext HTTP. It carries the insecure exit code
// through cobra and is never printed as an error message.
var errInsecureFound = errors.New("effective HTTP permitted")
