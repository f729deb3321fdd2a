package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"

	"github.com/sushihentaime/bloglist/internal/common"
)

func NewMailService(mb common.MessageConsumer, host, username, password, sender, recipient string, port int, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:        mb,
		m:         NewMailer(host, port, username, password, sender, NewTemplate()),
		recipient: recipient,
		logger:    logger,
		retries:   5,
		baseDelay: 500 * time.Millisecond,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SendNewUserNotification consumes user.registered events and mails a
// notification to the configured recipient for each new account.
func (s *MailService) SendNewUserNotification() {
	msgs, err := s.mb.Consume(common.UserRegisteredKey, common.UserExchange, common.UserRegisteredQueue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var data struct {
					Username string
					Name     string
				}

				err := json.Unmarshal(msg.Body, &data)
				if err != nil {
					s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
					continue
				}

				payload := struct {
					Username string
					Name     string
				}{
					Username: data.Username,
					Name:     data.Name,
				}

				// exponential backoff with jitter
				var attempt int
				for attempt = 0; attempt < s.retries; attempt++ {
					err = s.m.send(s.recipient, payload, "new_user_notification.html")
					if err == nil {
						s.logger.Info("new user notification sent", slog.String("username", data.Username))
						msg.Ack(false)
						break
					}

					delay := time.Duration(rand.Int63n(int64(s.baseDelay) << uint(attempt)))
					s.logger.Info("delaying new user notification", slog.String("username", data.Username), slog.Int("attempt", attempt), slog.Duration("delay", delay))
					time.Sleep(delay)
				}

				if attempt == s.retries {
					s.logger.Error("could not send new user notification", slog.String("username", data.Username))
					msg.Nack(false, false)
				}

			case <-s.ctx.Done():
				s.logger.Info("stopping SendNewUserNotification due to context cancellation")
				return
			}
		}
	}()
}

func (s *MailService) Close() {
	s.cancel()
}
