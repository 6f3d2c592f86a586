// Package bedrock sends chat conversations to foundation models through the
// Bedrock Runtime Converse API.
package bedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"warehouseapi/internal/model"
	"warehouseapi/internal/service"
)

// Client implements service.ChatModel.
type Client struct {
	runtime *bedrockruntime.Client
}

var _ service.ChatModel = (*Client)(nil)

// New creates a Bedrock Runtime client from a loaded AWS configuration.
func New(cfg aws.Config) *Client {
	return &Client{runtime: bedrockruntime.NewFromConfig(cfg)}
}

// Converse returns the first text block of the model's reply, or "" when the
// model answered without text.
func (c *Client) Converse(ctx context.Context, in service.ConverseInput) (string, error) {
	out, err := c.runtime.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId:         aws.String(in.ModelID),
		Messages:        messages(in.Messages),
		System:          []types.SystemContentBlock{&types.SystemContentBlockMemberText{Value: in.System}},
		InferenceConfig: inference(in.Inference),
	})
	if err != nil {
		return "", err
	}
	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", nil
	}
	for _, block := range msg.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			return text.Value, nil
		}
	}
	return "", nil
}

func messages(in []model.ChatMessage) []types.Message {
	out := make([]types.Message, 0, len(in))
	for _, m := range in {
		content := make([]types.ContentBlock, 0, len(m.Content))
		for _, c := range m.Content {
			content = append(content, &types.ContentBlockMemberText{Value: c.Text})
		}
		out = append(out, types.Message{
			Role:    types.ConversationRole(m.Role),
			Content: content,
		})
	}
	return out
}

func inference(in model.InferenceConfig) *types.InferenceConfiguration {
	ic := &types.InferenceConfiguration{}
	if in.MaxTokens != nil {
		ic.MaxTokens = aws.Int32(int32(*in.MaxTokens))
	}
	if in.Temperature != nil {
		ic.Temperature = aws.Float32(float32(*in.Temperature))
	}
	if in.TopP != nil {
		ic.TopP = aws.Float32(float32(*in.TopP))
	}
	return ic
}
