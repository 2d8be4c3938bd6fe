// Package jobs defines the queued background jobs.
package jobs

import (
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/queue"
)

// WelcomeJob greets a freshly signed-up user. No mail transport is
// wired yet, so handling the job logs the greeting; the queue plumbing
// around it is real.
type WelcomeJob struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

func (*WelcomeJob) Name() string { return "welcome" }

func (j *WelcomeJob) Handle() error {
	logger.Info("welcome mail", "email", j.Email, "name", j.UserName)
	return nil
}

// RegisterAll wires every job constructor into the queue registry.
// Called once at boot.
func RegisterAll() {
	queue.Register("welcome", func() queue.Job { return &WelcomeJob{} })
}
