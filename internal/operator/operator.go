package operator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/metrics"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	ledger  *bank.Bank
	queue   chan ActionItem
	metrics *metrics.Metrics
	logger  *logrus.Logger
}

func NewOperator(ledger *bank.Bank, queue chan ActionItem, m *metrics.Metrics, logger *logrus.Logger) *Operator {
	return &Operator{
		ledger:  ledger,
		queue:   queue,
		metrics: m,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	start := time.Now()
	o.metrics.SetQueueDepth(len(o.queue))
	name := item.action.Name()

	// Skip work whose caller has already given up.
	if err := item.ctx.Err(); err != nil {
		o.metrics.ObserveAction(name, metrics.OutcomeCanceled, start)
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.ledger)
	if err != nil {
		o.metrics.ObserveAction(name, metrics.OutcomeRejected, start)
		if o.logger != nil {
			o.logger.WithError(err).WithField("action", name).Debug("Operator.processItem.rejected")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	o.metrics.ObserveAction(name, metrics.OutcomeSuccess, start)
	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
