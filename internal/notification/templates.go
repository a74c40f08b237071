package notification

import (
	"fmt"
	"strings"
	"text/template"

	"tavola/internal/domain"
)

type statusTemplate struct {
	subject string
	body    *template.Template
}

var statusTemplates = map[string]statusTemplate{
	domain.OrderStatusConfirmed: {
		subject: "Your order is confirmed",
		body: mustTemplate("confirmed", `Hi {{.Name}},

We received your order #{{.ShortID}} and it's confirmed.
Order total: ${{.Amount}}.
{{if .Scheduled}}Scheduled for {{.ScheduledDate}}, {{.ScheduledSlot}}.
{{end}}We'll let you know as soon as the kitchen starts on it.

— Tavola`),
	},
	domain.OrderStatusProcessing: {
		subject: "Your order is being prepared",
		body: mustTemplate("processing", `Hi {{.Name}},

Good news — the kitchen is working on order #{{.ShortID}} right now.
{{if eq .Method "delivery"}}Estimated delivery: {{.EstimatedTime}}.
{{else if eq .Method "pickup"}}It will be ready for pickup soon.
{{end}}
— Tavola`),
	},
	domain.OrderStatusCompleted: {
		subject: "Your order is complete",
		body: mustTemplate("completed", `Hi {{.Name}},

Order #{{.ShortID}} is complete. We hope you enjoyed it!
You earned loyalty points on this order — check your balance anytime.

— Tavola`),
	},
	domain.OrderStatusCancelled: {
		subject: "Your order was cancelled",
		body: mustTemplate("cancelled", `Hi {{.Name}},

Order #{{.ShortID}} has been cancelled. If you were charged, the
payment will be refunded through your original payment method.

— Tavola`),
	},
}

type templateData struct {
	Name          string
	ShortID       string
	Amount        string
	Method        string
	EstimatedTime string
	Scheduled     bool
	ScheduledDate string
	ScheduledSlot string
}

// RenderStatusEmail renders the email for an order's new status. Unknown
// statuses are an error; the coordinator validates before calling.
func RenderStatusEmail(order domain.Order, status string) (Message, error) {
	tpl, ok := statusTemplates[status]
	if !ok {
		return Message{}, fmt.Errorf("no email template for status %q", status)
	}

	data := templateData{
		Name:    order.CustomerName,
		ShortID: shortID(order.ID),
		Amount:  fmt.Sprintf("%d.%02d", order.Amount/100, order.Amount%100),
	}
	if order.Delivery != nil {
		data.Method = order.Delivery.Method
		data.EstimatedTime = order.Delivery.EstimatedTime
	}
	if order.Scheduled && order.ScheduledInfo != nil {
		data.Scheduled = true
		data.ScheduledDate = order.ScheduledInfo.Date
		data.ScheduledSlot = order.ScheduledInfo.TimeSlot
	}

	var body strings.Builder
	if err := tpl.body.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("rendering %s email: %w", status, err)
	}

	return Message{
		To:      order.CustomerEmail,
		Subject: tpl.subject,
		Body:    body.String(),
	}, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}
