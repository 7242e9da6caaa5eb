package app

import (
	"context"

	"github.com/atinyakov/FleetKeeper/internal/config"
	"github.com/atinyakov/FleetKeeper/internal/export"
)

// OpenArchive builds the export archive selected by the options. It returns
// nil when archiving is disabled.
func OpenArchive(ctx context.Context, o *config.Options) (export.Archive, error) {
	switch o.ExportDriver {
	case config.ExportFS:
		return export.FSArchive{Dir: o.ExportDir}, nil
	case config.ExportS3:
		return export.OpenS3Archive(ctx, export.S3Config{
			Bucket:    o.S3Bucket,
			Region:    o.S3Region,
			Endpoint:  o.S3Endpoint,
			PathStyle: o.S3UsePathStyle,
		})
	}
	return nil, nil
}
