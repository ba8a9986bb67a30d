package memory

import "errors"

var errTxDone = errors.New("transaction has already been committed or rolled back")
