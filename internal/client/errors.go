package client

import "errors"

var errNilDependency = errors.New("client app requires services and a ui")
