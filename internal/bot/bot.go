package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pathakanu/foreverly/internal/config"
	"github.com/pathakanu/foreverly/internal/database"
	"github.com/pathakanu/foreverly/internal/intent"
	"github.com/pathakanu/foreverly/internal/metrics"
	"github.com/pathakanu/foreverly/internal/model"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	lookupLimit    = 5
	passwordLength = 6
	taskColour     = "black"

	helpReply     = `Say "remind me to ..." to set a reminder and "reminders" to get your last 5 reminders`
	unknownReply  = `I'm sorry, I don't understand that, type "how ..." for valid commands`
	noneReply     = "You have no reminders"
	fallbackReply = "Something went wrong, we were unable to complete your action"
)

// Handler processes one inbound text message.
type Handler interface {
	Handle(ctx context.Context, fromNumber, text string)
}

var _ Handler = (*Bot)(nil)

// MessageStore is the audit log of inbound messages.
type MessageStore interface {
	Save(ctx context.Context, sms *model.SMS) error
}

// UserDirectory looks up and provisions users by canonical key.
// FindByKey returns database.ErrNotFound for unknown keys.
type UserDirectory interface {
	FindByKey(ctx context.Context, key string) (*model.User, error)
	Create(ctx context.Context, user *model.User, password string) error
	ChangePassword(ctx context.Context, userID uint, password string) error
}

// ListStore reads and writes reminder lists and tasks. FindList returns a
// freshly loaded list with its tasks, or database.ErrNotFound.
type ListStore interface {
	FindList(ctx context.Context, userID uint, name string) (*model.ReminderList, error)
	SaveList(ctx context.Context, list *model.ReminderList) error
	SaveTask(ctx context.Context, task *model.ReminderTask) error
}

// Sender delivers an outbound SMS.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// Stores groups the persistence collaborators of a Bot.
type Stores struct {
	Messages MessageStore
	Users    UserDirectory
	Lists    ListStore
}

// Bot answers inbound SMS and runs the optional reminder digest.
type Bot struct {
	cfg         *config.Config
	messages    MessageStore
	users       UserDirectory
	lists       ListStore
	sender      Sender
	metrics     *metrics.Metrics
	cron        *cron.Cron
	logger      *zap.Logger
	newPassword func() string
}

// New creates a fully configured Bot instance.
func New(cfg *config.Config, stores Stores, sender Sender, m *metrics.Metrics, logger *zap.Logger) *Bot {
	return &Bot{
		cfg:         cfg,
		messages:    stores.Messages,
		users:       stores.Users,
		lists:       stores.Lists,
		sender:      sender,
		metrics:     m,
		cron:        cron.New(cron.WithLocation(cfg.LocalTimezone)),
		logger:      logger,
		newPassword: generatePassword,
	}
}

// Handle runs the full handling sequence for one message. It never fails:
// any error is logged and the sender gets a single apology instead.
func (b *Bot) Handle(ctx context.Context, fromNumber, text string) {
	err := b.process(ctx, fromNumber, text)
	if err == nil {
		return
	}

	b.metrics.RecordFailure()
	b.logger.Error("sms handling failed", zap.String("from", fromNumber), zap.Error(err))

	if err := b.reply(ctx, fromNumber, fallbackReply); err != nil {
		b.logger.Error("fallback reply failed", zap.String("from", fromNumber), zap.Error(err))
	}
}

func (b *Bot) process(ctx context.Context, fromNumber, text string) error {
	sms := &model.SMS{
		NumberFrom: fromNumber,
		NumberTo:   b.cfg.TwilioOutgoingNumber,
		Message:    text,
	}
	if err := b.messages.Save(ctx, sms); err != nil {
		return err
	}

	user, err := b.resolveUser(ctx, fromNumber)
	if err != nil {
		return err
	}

	kind, description := intent.Classify(text)
	b.metrics.RecordInbound(string(kind))

	switch kind {
	case intent.Reminder:
		return b.createReminder(ctx, fromNumber, user, description)
	case intent.Lookup:
		return b.lookupReminders(ctx, fromNumber, user)
	case intent.Help:
		return b.reply(ctx, fromNumber, helpReply)
	case intent.ResetPassword:
		return b.resetPassword(ctx, fromNumber, user)
	default:
		return b.reply(ctx, fromNumber, unknownReply)
	}
}

// resolveUser finds the user for fromNumber, provisioning an account and
// texting its credentials when the number is new. Concurrent first messages
// from the same number are not coordinated; the loser fails on the unique
// username.
func (b *Bot) resolveUser(ctx context.Context, fromNumber string) (*model.User, error) {
	key := SimplifyNumber(fromNumber)

	user, err := b.users.FindByKey(ctx, key)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	password := b.newPassword()
	newUser := &model.User{
		UserName:             key,
		PhoneNumber:          fromNumber,
		PhoneNumberConfirmed: true,
		Email:                fmt.Sprintf("%s@%s", key, b.cfg.AccountDomain),
		EmailConfirmed:       true,
		SecurityStamp:        strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
	if err := b.users.Create(ctx, newUser, password); err != nil {
		return nil, fmt.Errorf("provision user %s: %w", key, err)
	}
	b.metrics.RecordProvisioned()
	b.logger.Info("user provisioned", zap.String("username", key))

	created := fmt.Sprintf("Your account on %s has been created!\r\nUsername: %s\r\nPassword: %s", b.cfg.AccountDomain, key, password)
	if err := b.reply(ctx, fromNumber, created); err != nil {
		return nil, err
	}

	user, err = b.users.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reload user %s: %w", key, err)
	}
	return user, nil
}

// remindersList loads the user's reminder list, returning nil when it does
// not exist yet.
func (b *Bot) remindersList(ctx context.Context, userID uint) (*model.ReminderList, error) {
	list, err := b.lists.FindList(ctx, userID, model.RemindersListName)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	return list, err
}

func (b *Bot) createReminder(ctx context.Context, fromNumber string, user *model.User, description string) error {
	list, err := b.remindersList(ctx, user.ID)
	if err != nil {
		return err
	}
	if list == nil {
		list = &model.ReminderList{
			UserID:         user.ID,
			Name:           model.RemindersListName,
			LeftPositioned: true,
		}
		if err := b.lists.SaveList(ctx, list); err != nil {
			return err
		}
	}

	task := &model.ReminderTask{
		ListID:      list.ID,
		Name:        fmt.Sprintf("Reminder %d", len(list.Tasks)+1),
		Description: description,
		Colour:      taskColour,
	}
	if err := b.lists.SaveTask(ctx, task); err != nil {
		return err
	}

	return b.reply(ctx, fromNumber, fmt.Sprintf("We've created your reminder under %s", task.Name))
}

func (b *Bot) lookupReminders(ctx context.Context, fromNumber string, user *model.User) error {
	list, err := b.remindersList(ctx, user.ID)
	if err != nil {
		return err
	}

	latest := list.Latest(lookupLimit)
	if len(latest) == 0 {
		return b.reply(ctx, fromNumber, noneReply)
	}

	summary := fmt.Sprintf("Your last %d reminders were:", len(latest))
	if len(latest) == 1 {
		summary = "Your last reminder was:"
	}
	if err := b.reply(ctx, fromNumber, summary); err != nil {
		return err
	}

	for _, task := range latest {
		if err := b.reply(ctx, fromNumber, formatTask(task)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) resetPassword(ctx context.Context, fromNumber string, user *model.User) error {
	password := b.newPassword()
	if err := b.users.ChangePassword(ctx, user.ID, password); err != nil {
		return err
	}
	return b.reply(ctx, fromNumber, fmt.Sprintf("Your new account details\r\nUsername: %s\r\nPassword: %s", user.UserName, password))
}

func (b *Bot) reply(ctx context.Context, to, body string) error {
	err := b.sender.Send(ctx, to, body)
	b.metrics.RecordReply(err)
	if err != nil {
		return fmt.Errorf("send reply to %s: %w", to, err)
	}
	return nil
}

func formatTask(task model.ReminderTask) string {
	return fmt.Sprintf("%s: %s", task.Name, task.Description)
}

// SimplifyNumber turns a phone number into the canonical username: spaces and
// "+" are removed and a leading "61" country code is stripped.
func SimplifyNumber(number string) string {
	simplified := strings.NewReplacer(" ", "", "+", "").Replace(number)
	return strings.TrimPrefix(simplified, "61")
}

func generatePassword() string {
	return strings.ToLower(uuid.NewString()[:passwordLength])
}
