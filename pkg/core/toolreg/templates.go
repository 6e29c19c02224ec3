package toolreg

// Template names a built-in toolset plus its companion system prompt.
type Template string

const (
	TemplateCustomerSupport   Template = "customer-support"
	TemplatePersonalAssistant Template = "personal-assistant"
	TemplateNavigationSystem  Template = "navigation-system"
)

// Templates lists the built-in templates in display order.
func Templates() []Template {
	return []Template{TemplateCustomerSupport, TemplatePersonalAssistant, TemplateNavigationSystem}
}

// SystemPrompt returns the persona prompt that accompanies a template, or ""
// for an unknown template.
func SystemPrompt(t Template) string {
	switch t {
	case TemplateCustomerSupport:
		return "You are a helpful and friendly customer support agent. Be conversational and concise."
	case TemplatePersonalAssistant:
		return "You are a helpful and friendly personal assistant. Be proactive and efficient."
	case TemplateNavigationSystem:
		return "You are a helpful and friendly navigation assistant. Provide clear and accurate directions."
	}
	return ""
}

// Toolset returns a fresh copy of a template's tools, or nil for an unknown
// template. Callers may edit the returned slice freely.
func Toolset(t Template) []Tool {
	switch t {
	case TemplateCustomerSupport:
		return []Tool{
			{
				Name:        "lookup_order",
				Description: "Look up the status of a customer order by order number.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"order_number": map[string]any{"type": "STRING", "description": "The order number to look up."},
					},
					"required": []any{"order_number"},
				},
				IsEnabled:  true,
				Scheduling: SchedulingInterrupt,
			},
			{
				Name:        "escalate_to_human",
				Description: "Escalate the conversation to a human support agent.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"reason": map[string]any{"type": "STRING", "description": "Why the escalation is needed."},
					},
				},
				IsEnabled:  true,
				Scheduling: SchedulingInterrupt,
			},
			{
				Name:        "start_return",
				Description: "Start a product return for a delivered order.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"order_number": map[string]any{"type": "STRING"},
						"item_id":      map[string]any{"type": "STRING"},
					},
					"required": []any{"order_number", "item_id"},
				},
				IsEnabled:  true,
				Scheduling: SchedulingInterrupt,
			},
		}
	case TemplatePersonalAssistant:
		return []Tool{
			{
				Name:        "create_reminder",
				Description: "Create a reminder at a given time.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"text": map[string]any{"type": "STRING", "description": "What to be reminded about."},
						"time": map[string]any{"type": "STRING", "description": "When to fire, ISO 8601."},
					},
					"required": []any{"text", "time"},
				},
				IsEnabled:  true,
				Scheduling: SchedulingInterrupt,
			},
			{
				Name:        "send_message",
				Description: "Send a short message to a named contact.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"contact": map[string]any{"type": "STRING"},
						"body":    map[string]any{"type": "STRING"},
					},
					"required": []any{"contact", "body"},
				},
				IsEnabled:  true,
				Scheduling: SchedulingInterrupt,
			},
			{
				Name:        "check_calendar",
				Description: "List calendar events for a given day.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"date": map[string]any{"type": "STRING", "description": "Day to check, YYYY-MM-DD."},
					},
					"required": []any{"date"},
				},
				IsEnabled:  true,
				Scheduling: SchedulingWhenIdle,
			},
		}
	case TemplateNavigationSystem:
		return []Tool{
			{
				Name:        "set_destination",
				Description: "Set the active navigation destination.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"address": map[string]any{"type": "STRING", "description": "Street address or place name."},
					},
					"required": []any{"address"},
				},
				IsEnabled:  true,
				Scheduling: SchedulingInterrupt,
			},
			{
				Name:        "find_nearby",
				Description: "Find nearby places of a given category along the route.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"category": map[string]any{"type": "STRING", "description": "For example fuel, food, parking."},
					},
					"required": []any{"category"},
				},
				IsEnabled:  true,
				Scheduling: SchedulingInterrupt,
			},
			{
				Name:        "report_traffic",
				Description: "Report current traffic conditions on the active route.",
				Parameters: map[string]any{
					"type":       "OBJECT",
					"properties": map[string]any{},
				},
				IsEnabled:  true,
				Scheduling: SchedulingSilent,
			},
		}
	}
	return nil
}
