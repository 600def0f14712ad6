package sns

import (
	"context"
	"encoding/json"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/config"
)

// Publisher fans out content-update notifications via AWS SNS so edge
// caches can drop stale copies of a page.
type Publisher interface {
	PublishContentUpdate(ctx context.Context, slug string) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

func NewPublisher(cfg *config.Config) (Publisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &publisher{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSContentTopicARN}, nil
}

func (p *publisher) PublishContentUpdate(ctx context.Context, slug string) error {
	msg, err := json.Marshal(map[string]string{
		"slug":         slug,
		"published_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	body := string(msg)
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &p.topicARN,
		Message:  &body,
	})
	return err
}
