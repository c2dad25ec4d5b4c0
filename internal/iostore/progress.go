package iostore

import (
	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a progress bar that counts bytes of the corpus.
func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
