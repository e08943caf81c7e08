package operation

import "errors"

var errDomainFailure = errors.New("domain failure")
