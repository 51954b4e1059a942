package cmd

import (
	"context"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/famproperties/s3cognito"
	"github.com/famproperties/s3cognito/transfer"
)

const progressInterval = 100 * time.Millisecond

// wait blocks on h. With show set, a byte progress bar is drawn on w until the handle resolves.
func wait(ctx context.Context, h *transfer.Handle, show bool, w io.Writer, description string) (s3cognito.Outcome, error) {
	if !show {
		return h.Wait(ctx)
	}

	// -1 is an unknown size until the first progress report
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(progressInterval),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-h.Done():
			_ = bar.Finish()
			return h.Wait(ctx)
		case <-ctx.Done():
			return s3cognito.Outcome{}, ctx.Err()
		case <-ticker.C:
			current, total := h.Progress()
			if total > 0 && bar.GetMax64() != total {
				bar.ChangeMax64(total)
			}
			_ = bar.Set64(current)
		}
	}
}
