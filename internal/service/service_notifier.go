package service

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/unifin/finapi/internal/config"
	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/models"
)

// webhookNotifier posts budget utilization alerts to a configured webhook
// endpoint. Delivery runs in a background goroutine and is never retried:
// a missed alert is cheaper than a blocked transaction.
type webhookNotifier struct {
	client    *resty.Client
	threshold decimal.Decimal
	logger    *logger.Logger
}

// budgetAlert is the webhook payload.
type budgetAlert struct {
	BudgetID        string `json:"budget_id"`
	DepartmentID    string `json:"department_id"`
	FiscalYear      string `json:"fiscal_year"`
	TotalAmount     string `json:"total_amount"`
	SpentAmount     string `json:"spent_amount"`
	RemainingAmount string `json:"remaining_amount"`
	Utilization     string `json:"utilization"`
}

// NewWebhookNotifier constructs a Notifier that delivers utilization alerts
// over HTTP. Returns nil when delivery is disabled, which callers treat as
// "no notifier".
func NewWebhookNotifier(cfg config.Notifier, logger *logger.Logger) Notifier {
	if !cfg.Enabled || cfg.WebhookURL == "" {
		return nil
	}

	client := resty.New().
		SetBaseURL(cfg.WebhookURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &webhookNotifier{
		client:    client,
		threshold: decimal.NewFromFloat(cfg.UtilizationThreshold),
		logger:    logger,
	}
}

// BudgetThresholdCrossed emits an alert when the budget's utilization is at
// or above the configured threshold. The call returns immediately.
func (n *webhookNotifier) BudgetThresholdCrossed(ctx context.Context, budget models.Budget) {
	utilization := budget.Utilization()
	if utilization.LessThan(n.threshold) {
		return
	}

	alert := budgetAlert{
		BudgetID:        budget.ID.String(),
		DepartmentID:    budget.DepartmentID.String(),
		FiscalYear:      budget.FiscalYear,
		TotalAmount:     budget.TotalAmount.String(),
		SpentAmount:     budget.SpentAmount.String(),
		RemainingAmount: budget.RemainingAmount.String(),
		Utilization:     utilization.Round(4).String(),
	}

	// detach from the request lifetime; the alert outlives the response
	go func() {
		resp, err := n.client.R().SetBody(alert).Post("")
		if err != nil {
			n.logger.Err(err).Str("budget_id", alert.BudgetID).Msg("error delivering budget alert")
			return
		}
		if resp.IsError() {
			n.logger.Error().Int("status", resp.StatusCode()).Str("budget_id", alert.BudgetID).Msg("budget alert rejected by webhook")
		}
	}()
}
