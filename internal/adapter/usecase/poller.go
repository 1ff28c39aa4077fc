package usecase

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const (
	pollInterval = 4 * time.Second
	pollAttempts = 15
)

// sleepFunc waits for the given duration or until the context is done. It
// is injectable so tests do not spend real minutes polling.
type sleepFunc func(ctx context.Context, d time.Duration) error

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// videoPoller waits for an uploaded video to finish processing. It issues a
// fixed-interval status check up to pollAttempts times and stops as soon as
// the video is ready with a thumbnail. The wait blocks the submission's
// forward progress; nothing else proceeds until it resolves.
type videoPoller struct {
	graph    port.GraphClient
	interval time.Duration
	attempts int
	sleep    sleepFunc
}

func newVideoPoller(graph port.GraphClient) *videoPoller {
	return &videoPoller{
		graph:    graph,
		interval: pollInterval,
		attempts: pollAttempts,
		sleep:    sleep,
	}
}

// WaitForThumbnail returns the thumbnail URL once the video is ready, or
// domain.ErrVideoProcessingTimeout when all attempts are exhausted.
func (p *videoPoller) WaitForThumbnail(ctx context.Context, videoID string) (string, error) {
	for i := 0; i < p.attempts; i++ {
		if err := p.sleep(ctx, p.interval); err != nil {
			return "", err
		}
		status, err := p.graph.VideoStatus(ctx, videoID)
		if err != nil {
			return "", err
		}
		if status.Ready() {
			return status.ThumbnailURI, nil
		}
	}
	return "", domain.ErrVideoProcessingTimeout
}
