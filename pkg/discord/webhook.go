package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf(webhookURLTemplate, d.webhook.ID, d.webhook.Token)
}

// SendEmbed sends an embed message built from opts.
func (d *discordImpl) SendEmbed(ctx context.Context, opts MessageOptions) error {
	embed := Embed{
		Title:       opts.Title,
		Description: opts.Description,
		Color:       messageTypeColors[opts.Type],
		Fields:      opts.Fields,
		Footer:      opts.Footer,
	}
	if !opts.Timestamp.IsZero() {
		embed.Timestamp = opts.Timestamp.UTC().Format(time.RFC3339)
	}

	payload := &WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	}
	return d.sendWithRetry(ctx, payload)
}

// ReportBug sends a plain-text internal error report.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	payload := &WebhookPayload{
		Username: d.config.DefaultUsername,
		Content:  message,
	}
	return d.sendWithRetry(ctx, payload)
}

func (d *discordImpl) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.sendWithRetry: retrying attempt %d/%d", attempt, d.config.RetryCount)
			}
			time.Sleep(d.config.RetryDelay)
		}
		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
