package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"web3_journey_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAIFixture(t *testing.T, handler http.HandlerFunc) *AIService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.AI.BaseURL = server.URL
	cfg.AI.Model = "test-model"
	cfg.AI.APIKey = "test-key"
	return NewAIService(cfg)
}

func TestChatStreamDeliversChunks(t *testing.T) {
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{"以太", "坊虚拟机", "是..."}
		for _, chunk := range chunks {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":\"%s\"}}]}\n\n", chunk)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	var got strings.Builder
	err := svc.ChatStream(context.Background(), "ethereum-fundamentals", "evm",
		[]ChatMessage{{Role: "user", Content: "什么是EVM？"}},
		func(content string) error {
			got.WriteString(content)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, "以太坊虚拟机是...", got.String())
}

func TestChatStreamStopsOnCallbackError(t *testing.T) {
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 10; i++ {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":\"x\"}}]}\n\n")
		}
	})

	calls := 0
	err := svc.ChatStream(context.Background(), "", "",
		[]ChatMessage{{Role: "user", Content: "hi"}},
		func(content string) error {
			calls++
			return fmt.Errorf("client gone")
		})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestReviewCodeParsesStructuredReply(t *testing.T) {
	reply := `{"summary":"整体不错","securityScore":80,"gasScore":70,"readabilityScore":90,"overallScore":80,"issues":["缺少重入保护"],"highlights":["事件齐全"],"recommendations":["加 nonReentrant"]}`
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, reply)
	})

	review, err := svc.ReviewCode(context.Background(), "contract A {}", "Solidity")
	require.NoError(t, err)
	assert.False(t, review.RawResponse)
	assert.Equal(t, 80, review.SecurityScore)
	assert.Equal(t, []string{"缺少重入保护"}, review.Issues)
}

// markdown 代码块包裹的 JSON 也能解析
func TestReviewCodeStripsCodeFence(t *testing.T) {
	reply := "```json\n{\"summary\":\"ok\",\"securityScore\":60,\"gasScore\":60,\"readabilityScore\":60,\"overallScore\":60,\"issues\":[],\"highlights\":[],\"recommendations\":[]}\n```"
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, reply)
	})

	review, err := svc.ReviewCode(context.Background(), "contract A {}", "")
	require.NoError(t, err)
	assert.False(t, review.RawResponse)
	assert.Equal(t, 60, review.GasScore)
}

// 模型没按 JSON 回复时降级：原文进 summary，分数全零，标记 rawResponse
func TestReviewCodeFallsBackOnPlainText(t *testing.T) {
	reply := "你的合约写得还行，但是注意重入。"
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, reply)
	})

	review, err := svc.ReviewCode(context.Background(), "contract A {}", "Solidity")
	require.NoError(t, err)
	assert.True(t, review.RawResponse)
	assert.Equal(t, reply, review.Summary)
	assert.Zero(t, review.SecurityScore)
	assert.Zero(t, review.OverallScore)
	assert.Empty(t, review.Issues)
	assert.Empty(t, review.Highlights)
	assert.Empty(t, review.Recommendations)
}

func TestReviewCodeUpstreamError(t *testing.T) {
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := svc.ReviewCode(context.Background(), "contract A {}", "")
	assert.Error(t, err)
}

func TestSystemPromptCarriesContext(t *testing.T) {
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	prompt := svc.buildSystemPrompt("ethereum-fundamentals", "evm")
	assert.Contains(t, prompt, "ethereum-fundamentals")
	assert.Contains(t, prompt, "evm")

	// 未知模块回退到基础提示词
	base := svc.buildSystemPrompt("no-such-module", "")
	assert.Equal(t, svc.buildSystemPrompt("", ""), base)
}
