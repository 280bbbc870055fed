package discord

import "context"

// IDiscord sends messages to a Discord webhook.
// All sends are best-effort: callers treat failures as log-only events.
type IDiscord interface {
	// SendEmbed sends an embed message built from opts.
	SendEmbed(ctx context.Context, opts MessageOptions) error
	// ReportBug sends a plain-text internal error report.
	ReportBug(ctx context.Context, message string) error
	// Close releases idle connections.
	Close() error
}
