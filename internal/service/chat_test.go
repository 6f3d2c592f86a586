package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"warehouseapi/internal/model"
	repoMocks "warehouseapi/internal/repository/mocks"
	"warehouseapi/internal/storage"
	storeMocks "warehouseapi/internal/storage/mocks"
)

const testTranscriptURL = "https://acct.blob.core.windows.net/cache/WH001/CAM1/chunks/ts_chunk_start-0-end-30_file.json"

type mockChatModel struct {
	mock.Mock
}

func (m *mockChatModel) Converse(ctx context.Context, in ConverseInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func newTestChat(mChunks *repoMocks.MockChunkRepository, mStore *storeMocks.MockStorage, mModel *mockChatModel) *chatService {
	svc := NewChatService(mChunks, mStore, mModel, ChatOptions{}, zerolog.Nop()).(*chatService)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 15, 4, 5, 0, time.UTC) }
	svc.newID = func() string { return "0123456789abcdef0123456789abcdef" }
	return svc
}

func withTranscripts(ctx context.Context, mStore *storeMocks.MockStorage) {
	mStore.On("List", ctx, "cache", "WH001/CAM1/chunks/").Return([]storage.ObjectInfo{
		{Key: "WH001/CAM1/chunks/ts_chunk_start-0-end-30_file.json"},
	}, nil)
	mStore.On("Get", ctx, "cache", "WH001/CAM1/chunks/ts_chunk_start-0-end-30_file.json").
		Return(body(`[{"summary":"two trucks unloading"}]`), storage.ObjectInfo{}, nil)
}

func TestChatService_Chat(t *testing.T) {
	ctx := context.Background()
	chunk := &model.Chunk{ID: "CH1", TranscriptsURL: strp(testTranscriptURL)}

	t.Run("happy path with defaults", func(t *testing.T) {
		mChunks := new(repoMocks.MockChunkRepository)
		mStore := new(storeMocks.MockStorage)
		mModel := new(mockChatModel)

		mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(chunk, nil)
		withTranscripts(ctx, mStore)
		mModel.On("Converse", ctx, mock.MatchedBy(func(in ConverseInput) bool {
			return in.ModelID == DefaultModelID &&
				strings.Contains(in.System, "**************summary**************\ntwo trucks unloading") &&
				len(in.Messages) == 2 &&
				in.Messages[1].Role == model.ChatRoleUser &&
				in.Messages[1].Content[0].Text == "How many trucks?" &&
				*in.Inference.MaxTokens == 1000 && *in.Inference.TopP == 0.9
		})).Return("Two trucks.", nil)

		req := model.ChatRequest{
			UserQuery: "How many trucks?",
			Conversation: []model.ChatMessage{
				{Role: model.ChatRoleUser, Content: []model.MessageContent{{Text: "hi"}}},
			},
		}
		res, err := newTestChat(mChunks, mStore, mModel).Chat(ctx, "WH001", "CAM1", "CH1", req)

		require.NoError(t, err)
		require.Len(t, res.Conversation, 3)
		assert.Equal(t, model.ChatRoleAssistant, res.Conversation[2].Role)
		assert.Equal(t, "Two trucks.", res.Conversation[2].Content[0].Text)
		assert.Equal(t, "2025-03-01 15:04:05", res.ChatLastTime)
		assert.Equal(t, "0123456789abcdef0123456789abcdef", res.ChatTransactionID)
		assert.Equal(t, DefaultModelID, res.ModelID)
		assert.Equal(t, 0.7, *res.InferenceConfig.Temperature)
		mModel.AssertNumberOfCalls(t, "Converse", 1)
	})

	t.Run("keeps caller ids and overrides", func(t *testing.T) {
		mChunks := new(repoMocks.MockChunkRepository)
		mStore := new(storeMocks.MockStorage)
		mModel := new(mockChatModel)

		mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(chunk, nil)
		withTranscripts(ctx, mStore)
		mModel.On("Converse", ctx, mock.MatchedBy(func(in ConverseInput) bool {
			return in.ModelID == "custom-model" && *in.Inference.Temperature == 0.2 && *in.Inference.MaxTokens == 1000
		})).Return("ok", nil)

		temp := 0.2
		req := model.ChatRequest{
			UserQuery:         "q",
			ModelID:           "custom-model",
			InferenceConfig:   &model.InferenceConfig{Temperature: &temp},
			ChatTransactionID: "tx-1",
		}
		res, err := newTestChat(mChunks, mStore, mModel).Chat(ctx, "WH001", "CAM1", "CH1", req)

		require.NoError(t, err)
		assert.Equal(t, "tx-1", res.ChatTransactionID)
		assert.Equal(t, "custom-model", res.ModelID)
	})

	errorCases := []struct {
		name       string
		setupMocks func(mChunks *repoMocks.MockChunkRepository, mStore *storeMocks.MockStorage, mModel *mockChatModel)
		wantErr    error
	}{
		{
			name: "chunk not found",
			setupMocks: func(mChunks *repoMocks.MockChunkRepository, _ *storeMocks.MockStorage, _ *mockChatModel) {
				mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrChunkNotFound,
		},
		{
			name: "transcript url missing",
			setupMocks: func(mChunks *repoMocks.MockChunkRepository, _ *storeMocks.MockStorage, _ *mockChatModel) {
				mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(&model.Chunk{ID: "CH1"}, nil)
			},
			wantErr: ErrTranscriptURLMissing,
		},
		{
			name: "unsupported url",
			setupMocks: func(mChunks *repoMocks.MockChunkRepository, _ *storeMocks.MockStorage, _ *mockChatModel) {
				mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(&model.Chunk{ID: "CH1", TranscriptsURL: strp("s3://bucket/key")}, nil)
			},
			wantErr: ErrUnsupportedBlobURL,
		},
		{
			name: "no transcript files",
			setupMocks: func(mChunks *repoMocks.MockChunkRepository, mStore *storeMocks.MockStorage, _ *mockChatModel) {
				mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(chunk, nil)
				mStore.On("List", ctx, "cache", "WH001/CAM1/chunks/").Return([]storage.ObjectInfo{{Key: "WH001/CAM1/chunks/video.mp4"}}, nil)
			},
			wantErr: ErrTranscriptsNotFound,
		},
		{
			name: "listing fails",
			setupMocks: func(mChunks *repoMocks.MockChunkRepository, mStore *storeMocks.MockStorage, _ *mockChatModel) {
				mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(chunk, nil)
				mStore.On("List", ctx, "cache", "WH001/CAM1/chunks/").Return(nil, errors.New("auth failed"))
			},
			wantErr: ErrTranscriptsNotFound,
		},
		{
			name: "empty context",
			setupMocks: func(mChunks *repoMocks.MockChunkRepository, mStore *storeMocks.MockStorage, _ *mockChatModel) {
				mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(chunk, nil)
				mStore.On("List", ctx, "cache", "WH001/CAM1/chunks/").Return([]storage.ObjectInfo{
					{Key: "WH001/CAM1/chunks/ts_chunk_start-0-end-30_file.json"},
				}, nil)
				mStore.On("Get", ctx, "cache", "WH001/CAM1/chunks/ts_chunk_start-0-end-30_file.json").
					Return(body(`[]`), storage.ObjectInfo{}, nil)
			},
			wantErr: ErrEmptyVideoContext,
		},
		{
			name: "model returns nothing",
			setupMocks: func(mChunks *repoMocks.MockChunkRepository, mStore *storeMocks.MockStorage, mModel *mockChatModel) {
				mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(chunk, nil)
				withTranscripts(ctx, mStore)
				mModel.On("Converse", ctx, mock.Anything).Return("", nil)
			},
			wantErr: ErrNoModelResponse,
		},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			mChunks := new(repoMocks.MockChunkRepository)
			mStore := new(storeMocks.MockStorage)
			mModel := new(mockChatModel)
			tt.setupMocks(mChunks, mStore, mModel)

			res, err := newTestChat(mChunks, mStore, mModel).Chat(ctx, "WH001", "CAM1", "CH1", model.ChatRequest{UserQuery: "q"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}

	t.Run("bedrock api error", func(t *testing.T) {
		mChunks := new(repoMocks.MockChunkRepository)
		mStore := new(storeMocks.MockStorage)
		mModel := new(mockChatModel)
		mChunks.On("Find", ctx, "WH001", "CAM1", "CH1").Return(chunk, nil)
		withTranscripts(ctx, mStore)
		mModel.On("Converse", ctx, mock.Anything).
			Return("", &smithy.GenericAPIError{Code: "ValidationException", Message: "bad model"})

		_, err := newTestChat(mChunks, mStore, mModel).Chat(ctx, "WH001", "CAM1", "CH1", model.ChatRequest{UserQuery: "q"})

		var ue *UpstreamError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "Bedrock", ue.Service)
	})
}
