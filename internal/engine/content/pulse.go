package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// TopicPulse samples recent tweets about a topic so a creator can see what
// angle is currently landing before publishing the generated posts.
func TopicPulse(ctx context.Context, topic string, limit int) ([]engine.PulseTweet, error) {
	engine.IncrPulseRequests()

	tw := engine.Cfg.TwitterClient
	if tw == nil {
		return nil, errors.New("twitter client not configured")
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, errors.New("topic is required")
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	tweets, err := tw.SearchTimeline(ctx, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("twitter search: %w", err)
	}

	slog.Info("topic pulse", slog.Int("tweets", len(tweets)), slog.String("topic", topic))

	result := make([]engine.PulseTweet, 0, len(tweets))
	for _, t := range tweets {
		result = append(result, engine.PulseTweet{
			ID:        t.ID,
			AuthorID:  t.AuthorID,
			Text:      t.Text,
			URL:       "https://x.com/i/status/" + t.ID,
			Likes:     t.Likes,
			Retweets:  t.Retweets,
			CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return result, nil
}
