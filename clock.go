package inventory

import "time"

// Clock supplies the timestamps written by mutating operations. Injecting it
// keeps the core deterministic under test; production callers pass nil to
// NewProductCatalog and get time.Now.
type Clock func() time.Time
