package formatter

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/younsl/awsls/internal/models"
)

const (
	bucketNameWidth = 30
	minSizeWidth    = 10
)

// BucketTableOptions controls how the bucket table is printed
type BucketTableOptions struct {
	HumanReadable bool
	SortBySize    bool
}

// SortBucketsBySize returns a copy of buckets ordered by size, largest first.
// Buckets of equal size keep their relative order.
func SortBucketsBySize(buckets []models.BucketInfo) []models.BucketInfo {
	sorted := make([]models.BucketInfo, len(buckets))
	copy(sorted, buckets)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalSize > sorted[j].TotalSize
	})
	return sorted
}

// PrintBucketsTable prints bucket names and sizes as two columns
func PrintBucketsTable(w io.Writer, buckets []models.BucketInfo, opts BucketTableOptions) {
	if opts.SortBySize {
		buckets = SortBucketsBySize(buckets)
	}

	sizeWidth := minSizeWidth
	if !opts.HumanReadable {
		sizeWidth = rawSizeWidth(buckets)
	}

	fmt.Fprintf(w, "%-*s %-*s\n", bucketNameWidth, "bucket name", sizeWidth, "size")

	for _, bucket := range buckets {
		size := strconv.FormatInt(bucket.TotalSize, 10)
		if opts.HumanReadable {
			size = HumanReadableSize(bucket.TotalSize)
		}
		fmt.Fprintf(w, "%-*s %-*s\n", bucketNameWidth, bucket.BucketName, sizeWidth, size)
	}
}

// rawSizeWidth fits the largest byte count plus one space, at least minSizeWidth
func rawSizeWidth(buckets []models.BucketInfo) int {
	var largest int64
	for _, bucket := range buckets {
		if bucket.TotalSize > largest {
			largest = bucket.TotalSize
		}
	}
	return max(len(strconv.FormatInt(largest, 10))+1, minSizeWidth)
}

// PrintBucketsSummary prints bucket, object and byte totals
func PrintBucketsSummary(w io.Writer, buckets []models.BucketInfo) {
	if len(buckets) == 0 {
		return
	}

	var totalObjects, totalSize int64
	for _, bucket := range buckets {
		totalObjects += bucket.ObjectCount
		totalSize += bucket.TotalSize
	}

	fmt.Fprintf(w, "\nTotal: %d buckets, %s objects, %s\n",
		len(buckets),
		humanize.Comma(totalObjects),
		humanize.IBytes(uint64(totalSize)))
}
