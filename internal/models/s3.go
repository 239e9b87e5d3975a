package models

// BucketInfo represents an S3 bucket and the accumulated size of its objects
type BucketInfo struct {
	BucketName  string
	Region      string // home region of the bucket
	ObjectCount int64
	TotalSize   int64 // in bytes
}
