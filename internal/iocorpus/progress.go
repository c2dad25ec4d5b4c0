package iocorpus

import (
	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a progress bar for a download of total bytes.
func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
