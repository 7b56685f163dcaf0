package texture

import "errors"

var errNotFound = errors.New("texture: no file for reference")
