package workers

import (
	"context"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/logging"
)

// StartTemplateWarmer fetches the card template on startup and refreshes it
// every 6 hours. Failures are logged and retried on the next tick; card
// rendering falls back to the on-demand fetch in the meantime.
func StartTemplateWarmer(templates *common.TemplateService) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	warmTemplateTask(templates)

	for range ticker.C {
		warmTemplateTask(templates)
	}
}

func warmTemplateTask(templates *common.TemplateService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := templates.Refresh(ctx); err != nil {
		logging.Warn("Card template refresh failed", "error", err.Error())
	}
}
