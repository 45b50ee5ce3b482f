package ports

import (
	"context"

	"github.com/otabase/asnpath/pkg/extract"
)

// PathSink accepts extracted path lists for storage. Implementations own
// the persistence format; the extraction core never sees it.
type PathSink interface {
	// Write stores the paths extracted from the named message, replacing
	// any previously stored list for that message.
	Write(ctx context.Context, message string, paths []extract.Path) error
}
