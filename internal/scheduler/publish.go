package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/publish"
)

const (
	PublishJobName    = "site_publish"
	publishJobTimeout = 5 * time.Minute
)

// AddPublishJob re-exports every published project on cronExpr.
func (s *Scheduler) AddPublishJob(cronExpr string, publisher *publish.Publisher, lister publish.PublishedLister) error {
	if publisher == nil || lister == nil {
		return fmt.Errorf("publish job requires a publisher and a project lister")
	}
	return s.Add(PublishJobName, cronExpr, publishJobTimeout, func(ctx context.Context) error {
		n, err := publisher.PublishAll(ctx, lister)
		if err != nil {
			return fmt.Errorf("published %d sites before failing: %w", n, err)
		}
		log.Ctx(ctx).Info().Int("published", n).Msg("Scheduled publish finished")
		return nil
	})
}
