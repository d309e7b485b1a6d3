package bulk

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"google.golang.org/api/youtube/v3"
)

// VideoService is the slice of the API client the runner needs.
type VideoService interface {
	VideoDetails(ctx context.Context, ids []string, parts []string) (map[string]*youtube.Video, error)
	UpdateVideo(ctx context.Context, video *youtube.Video) error
}

// Result counts the outcome of a bulk run.
type Result struct {
	Updated int
	Skipped int
}

// Runner executes a bulk update: one batched detail fetch up front, then one
// paced write per changed row.
type Runner struct {
	Service VideoService

	// Limiter paces successive write calls. The pacing is a static courtesy
	// to the API's rate limits, not adaptive backpressure.
	Limiter *rate.Limiter

	// Out receives per-row progress lines.
	Out io.Writer

	Log zerolog.Logger
}

// NewRunner builds a runner writing successive updates no closer together
// than delay. A zero delay disables pacing.
func NewRunner(service VideoService, delay time.Duration, out io.Writer, log zerolog.Logger) *Runner {
	var limiter *rate.Limiter
	if delay > 0 {
		limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
	return &Runner{Service: service, Limiter: limiter, Out: out, Log: log}
}

// Run applies rows to the channel's videos.
//
// Rows whose id is blank or unknown to the remote system are skipped and
// counted, as are rows that change nothing. Any error during a write aborts
// the run; there is no partial-completion checkpointing.
func (r *Runner) Run(ctx context.Context, rows []Row) (Result, error) {
	var res Result

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.ID != "" {
			ids = append(ids, row.ID)
		}
	}

	r.Log.Info().Int("videos", len(ids)).Msg("fetching current metadata")
	current, err := r.Service.VideoDetails(ctx, ids, []string{"snippet", "status"})
	if err != nil {
		return res, err
	}

	for _, row := range rows {
		video, ok := current[row.ID]
		if row.ID == "" || !ok {
			fmt.Fprintf(r.Out, "  Skip (not found): %s\n", row.ID)
			res.Skipped++
			continue
		}

		if !Apply(video, row) {
			res.Skipped++
			continue
		}

		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx); err != nil {
				return res, err
			}
		}

		if err := r.Service.UpdateVideo(ctx, video); err != nil {
			return res, err
		}

		fmt.Fprintf(r.Out, "  Updated: %s  %s\n", row.ID, clip(video.Snippet.Title, 55))
		res.Updated++
	}

	return res, nil
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
