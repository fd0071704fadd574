package workers

import (
	"pyc-official/secretariat/internal/common"
)

// InitWorkers starts the background workers. Currently just the card
// template warmer; it keeps the decoded background image hot so card
// downloads never pay the fetch latency.
func InitWorkers(templates *common.TemplateService) {
	go StartTemplateWarmer(templates)
}
