package queue

import (
    "context"
    "time"

    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/auth"
)

// RegistrationObserver publishes a UserRegisteredEvent for every new account.
// Publishing is best effort: a broker failure is logged and registration
// still succeeds.
func RegistrationObserver(pub Publisher, log logrus.FieldLogger) auth.Observer {
    if log == nil {
        log = logrus.StandardLogger()
    }
    return func(ctx context.Context, ev auth.Event) {
        if ev.Kind != auth.EventRegistered {
            return
        }
        pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
        defer cancel()
        err := pub.Publish(pctx, UserRegisteredQueue, UserRegisteredEvent{
            UserID:       ev.Session.UserID,
            Name:         ev.Session.Name,
            Email:        ev.Session.Email,
            RegisteredAt: ev.At.UTC().Format(time.RFC3339),
        })
        if err != nil {
            log.WithError(err).WithField("user_id", ev.Session.UserID).Warn("queue: user.registered not published")
        }
    }
}
