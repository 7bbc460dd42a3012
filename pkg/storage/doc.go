// Package storage provides read-only access to records documents kept on the
// local filesystem or in Amazon S3 (and S3-compatible services such as MinIO).
//
// Both backends implement the Storage interface:
//
//	local := storage.NewLocalStorage("/var/lib/records")
//	rc, err := local.Open(ctx, "2024/users.json")
//
//	remote, err := storage.NewS3Storage(ctx, storage.S3Config{
//	    Bucket: "records",
//	    Region: "eu-central-1",
//	})
//	rc, err = remote.Open(ctx, "2024/users.json")
//
// LocalStorage confines paths to its base directory when one is given.
// S3Storage classifies SDK failures into the sentinel errors in errors.go so
// callers can branch with errors.Is without importing the AWS SDK.
package storage
