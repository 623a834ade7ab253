package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/sirupsen/logrus"
)

// Consumer listens on the order.placed and user.registered queues and appends
// one line per message to a log file under Dir.
type Consumer struct {
    URL string
    Dir string
    Log logrus.FieldLogger
}

func NewConsumer(url, dir string, log logrus.FieldLogger) *Consumer {
    if url == "" {
        url = DefaultURL
    }
    if dir == "" {
        dir = "logs"
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &Consumer{URL: url, Dir: dir, Log: log}
}

// Run keeps a broker connection alive with exponential backoff until ctx is
// cancelled. Processing errors reject the offending message and never stop
// the loop.
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        conn, err := amqp.Dial(c.URL)
        if err != nil {
            c.Log.WithError(err).Warnf("event-consumer: failed to dial broker; retrying in %s", backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = c.consumeLoop(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        c.Log.WithError(err).Warn("event-consumer: consume loop ended; reconnecting")
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        c.Log.WithError(err).Warn("event-consumer: set QoS failed")
    }

    orders, err := c.subscribe(ch, OrderPlacedQueue)
    if err != nil {
        return err
    }
    users, err := c.subscribe(ch, UserRegisteredQueue)
    if err != nil {
        return err
    }

    for {
        var (
            d     amqp.Delivery
            ok    bool
            queue string
        )
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok = <-orders:
            queue = OrderPlacedQueue
        case d, ok = <-users:
            queue = UserRegisteredQueue
        }
        if !ok {
            return errors.New("deliveries channel closed")
        }
        if err := c.handle(queue, d.Body); err != nil {
            c.Log.WithError(err).WithField("queue", queue).Warn("event-consumer: handle message failed")
            _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
            continue
        }
        _ = d.Ack(false)
    }
}

func (c *Consumer) subscribe(ch *amqp.Channel, queue string) (<-chan amqp.Delivery, error) {
    if err := declare(ch, queue); err != nil {
        return nil, fmt.Errorf("queue declare %s: %w", queue, err)
    }
    msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
    if err != nil {
        return nil, fmt.Errorf("queue consume %s: %w", queue, err)
    }
    return msgs, nil
}

func (c *Consumer) handle(queue string, body []byte) error {
    var (
        line string
        file string
    )
    switch queue {
    case OrderPlacedQueue:
        var ev OrderPlacedEvent
        if err := json.Unmarshal(body, &ev); err != nil {
            return fmt.Errorf("unmarshal: %w", err)
        }
        line, file = FormatOrderPlaced(ev), "orders.log"
    case UserRegisteredQueue:
        var ev UserRegisteredEvent
        if err := json.Unmarshal(body, &ev); err != nil {
            return fmt.Errorf("unmarshal: %w", err)
        }
        line, file = FormatUserRegistered(ev), "users.log"
    default:
        return fmt.Errorf("unknown queue %q", queue)
    }
    return appendLine(filepath.Join(c.Dir, file), line)
}

func appendLine(path, line string) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()
    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// FormatOrderPlaced renders the single-line orders.log entry.
func FormatOrderPlaced(ev OrderPlacedEvent) string {
    ids := make([]string, 0, len(ev.ProductIDs))
    for _, id := range ev.ProductIDs {
        ids = append(ids, fmt.Sprint(id))
    }
    return fmt.Sprintf("[%s] Order placed | order_id=%s | user_id=%s | email=\"%s\" | items=%d | total=%s | payment=\"%s\" | products=[%s]\n",
        ev.PlacedAt, ev.OrderID, ev.UserID, ev.UserEmail, ev.Items, ev.TotalAmount, ev.PaymentMethod, strings.Join(ids, ","))
}

// FormatUserRegistered renders the single-line users.log entry.
func FormatUserRegistered(ev UserRegisteredEvent) string {
    return fmt.Sprintf("[%s] User registered | user_id=%s | name=\"%s\" | email=\"%s\"\n",
        ev.RegisteredAt, ev.UserID, ev.Name, ev.Email)
}
