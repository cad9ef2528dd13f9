package feedbacksvc

import (
	"log"

	"github.com/earseneau1/course-scheduler/core"
)

// ConsoleFeedback prints user notifications to the console. The real toast
// surface lives on the far side of the API; this stands in for it everywhere
// else (CLI, tests, headless runs).
type ConsoleFeedback struct {
	std *log.Logger
}

var _ core.Feedback = (*ConsoleFeedback)(nil)

func NewConsoleFeedback(std *log.Logger) *ConsoleFeedback {
	return &ConsoleFeedback{std: std}
}

func (f ConsoleFeedback) Notify(severity, message string) {
	f.std.Printf("[%s] %s", severity, message)
}
