package webhook

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrEventQueueFull - буфер событий заполнен, событие отброшено
var ErrEventQueueFull = errors.New("board event queue is full")

// AsyncPublisher принимает события в буфер и передает их приемнику из отдельной горутины.
// Publish никогда не ждет приемник.
type AsyncPublisher struct {
	next   WebhookPublisher
	events chan BoardEvent
	logger *logrus.Logger
}

// NewAsyncPublisher создает буферизованную обертку над приемником
func NewAsyncPublisher(next WebhookPublisher, buffer int, logger *logrus.Logger) *AsyncPublisher {
	if buffer <= 0 {
		buffer = 1
	}
	return &AsyncPublisher{
		next:   next,
		events: make(chan BoardEvent, buffer),
		logger: logger,
	}
}

// Publish ставит событие в очередь; при заполненном буфере возвращает ErrEventQueueFull
func (p *AsyncPublisher) Publish(_ context.Context, event BoardEvent) error {
	select {
	case p.events <- event:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// Start запускает горутину доставки. События передаются приемнику по одному,
// в порядке постановки, с контекстом приложения, а не запроса.
func (p *AsyncPublisher) Start(ctx context.Context) {
	p.logger.Info("Starting board event dispatcher...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				p.logger.WithField("pending", len(p.events)).Info("Stopping board event dispatcher.")
				return
			case event := <-p.events:
				if err := p.next.Publish(ctx, event); err != nil {
					p.logger.WithError(err).WithFields(logrus.Fields{
						"event_action":      event.Action,
						"event_incident_id": event.IncidentID,
					}).Warn("Failed to deliver board event")
				}
			}
		}
	}()
}
