package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/events"
)

// Client publishes session events on a Redis pub/sub channel.
type Client struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
	timeout time.Duration
}

// New - connects to Redis at addr and checks the connection.
func New(ctx context.Context, logger *slog.Logger, addr, channel string, timeout time.Duration) (*Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: failed to connect to Redis: %w", apperror.ErrPublisherUnavailable, err)
	}

	return NewWithClient(logger, conn, channel, timeout), nil
}

// NewWithClient - wraps an already connected client.
func NewWithClient(logger *slog.Logger, client *redis.Client, channel string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger,
		client:  client,
		channel: channel,
		timeout: timeout,
	}
}

// Publish - sends event as JSON to the configured channel.
func (that *Client) Publish(ctx context.Context, event events.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Notify - publishes event within the configured timeout. Failures are logged
// and never reach the game.
func (that *Client) Notify(event events.Event) {
	log := that.logger.With("method", "Notify", "event", event.Type)

	ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
	defer cancel()

	if err := that.Publish(ctx, event); err != nil {
		log.Error("could not publish event", "error", err)
		return
	}

	log.Debug("event published", "channel", that.channel)
}

func (that *Client) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
