package bot

import (
	"context"
	"strings"

	"github.com/pathakanu/foreverly/internal/model"
	"go.uber.org/zap"
)

// DigestSource lists users together with their preloaded reminder list.
type DigestSource interface {
	UsersWithList(ctx context.Context, name string) ([]model.User, error)
}

// StartScheduler registers the digest job on the configured cron schedule and
// starts the scheduler loop. An empty schedule leaves the digest disabled.
func (b *Bot) StartScheduler(source DigestSource) error {
	if b.cfg.DigestSchedule == "" {
		b.logger.Info("reminder digest disabled")
		return nil
	}

	_, err := b.cron.AddFunc(b.cfg.DigestSchedule, func() {
		b.sendDigests(context.Background(), source)
	})
	if err != nil {
		return err
	}
	b.cron.Start()
	b.logger.Info("reminder digest scheduled", zap.String("schedule", b.cfg.DigestSchedule))
	return nil
}

// StopScheduler stops the cron scheduler gracefully.
func (b *Bot) StopScheduler() {
	ctx := b.cron.Stop()
	<-ctx.Done()
}

// sendDigests texts every user with reminders their latest ones in a single
// message. Failures for one user do not stop the others.
func (b *Bot) sendDigests(ctx context.Context, source DigestSource) {
	users, err := source.UsersWithList(ctx, model.RemindersListName)
	if err != nil {
		b.logger.Error("digest: fetch users", zap.Error(err))
		return
	}

	for _, user := range users {
		if len(user.Lists) == 0 {
			continue
		}
		latest := user.Lists[0].Latest(lookupLimit)
		if len(latest) == 0 {
			continue
		}
		if err := b.reply(ctx, user.PhoneNumber, formatDigest(latest)); err != nil {
			b.logger.Error("digest: send", zap.String("username", user.UserName), zap.Error(err))
		}
	}
}

func formatDigest(tasks []model.ReminderTask) string {
	var sb strings.Builder
	sb.WriteString("Your reminders:")
	for _, task := range tasks {
		sb.WriteString("\n")
		sb.WriteString(formatTask(task))
	}
	return sb.String()
}
