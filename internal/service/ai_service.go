package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/pkg/logger"

	"go.uber.org/zap"
)

// AIService 对接 OpenAI 兼容接口的学习助手：流式问答 + 合约代码评审
type AIService struct {
	Config *config.Config
	Client *http.Client
}

func NewAIService(cfg *config.Config) *AIService {
	return &AIService{
		Config: cfg,
		Client: &http.Client{Timeout: 120 * time.Second},
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

type chatCompletion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const tutorSystemPrompt = `你是一位 Web3 开发导师，精通区块链原理、Solidity 智能合约、DeFi、NFT 和零知识证明。
用学员的语言回答，解释概念时给出可运行的代码示例，并提醒常见的安全陷阱。`

// buildSystemPrompt 把当前学习位置注入系统提示，让回答贴合所在章节
func (s *AIService) buildSystemPrompt(moduleID, topicID string) string {
	prompt := tutorSystemPrompt
	if moduleID == "" {
		return prompt
	}
	mod, ok := catalog.ModuleByID(moduleID)
	if !ok {
		return prompt
	}
	prompt += fmt.Sprintf("\n学员正在学习模块「%s」", mod.ID)
	if topicID != "" {
		if topic, ok := catalog.TopicByID(moduleID, topicID); ok {
			prompt += fmt.Sprintf("的知识点「%s」", topic.ID)
		}
	}
	prompt += "，回答时优先结合该章节的内容。"
	return prompt
}

// ChatStream 流式对话，每解析出一段增量就回调一次。
// 回调返回错误（如客户端断开）即停止读取。
func (s *AIService) ChatStream(ctx context.Context, moduleID, topicID string, messages []ChatMessage, onChunk func(content string) error) error {
	all := append([]ChatMessage{{Role: "system", Content: s.buildSystemPrompt(moduleID, topicID)}}, messages...)

	body, err := json.Marshal(chatRequest{
		Model:    s.Config.AI.Model,
		Messages: all,
		Stream:   true,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.Config.AI.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Config.AI.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("AI service returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			break
		}

		var chunk chatStreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			logger.Log.Debug("skipping unparsable stream chunk", zap.String("payload", payload))
			continue
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		if err := onChunk(chunk.Choices[0].Delta.Content); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// CodeReview 代码评审结果。模型没按 JSON 回复时降级为纯文本总结，RawResponse 置真。
type CodeReview struct {
	Summary          string   `json:"summary"`
	SecurityScore    int      `json:"securityScore"`
	GasScore         int      `json:"gasScore"`
	ReadabilityScore int      `json:"readabilityScore"`
	OverallScore     int      `json:"overallScore"`
	Issues           []string `json:"issues"`
	Highlights       []string `json:"highlights"`
	Recommendations  []string `json:"recommendations"`
	RawResponse      bool     `json:"rawResponse"`
}

const reviewPromptTemplate = `请评审下面的%s代码，重点关注智能合约安全（重入、溢出、权限控制）、Gas 消耗和可读性。
严格以 JSON 返回，不要包含其它文字，格式：
{"summary":"...","securityScore":0-100,"gasScore":0-100,"readabilityScore":0-100,"overallScore":0-100,"issues":["..."],"highlights":["..."],"recommendations":["..."]}

代码：
%s`

// ReviewCode 非流式调用，尝试把回复解析成结构化评审
func (s *AIService) ReviewCode(ctx context.Context, code, language string) (*CodeReview, error) {
	if language == "" {
		language = "Solidity"
	}

	body, err := json.Marshal(chatRequest{
		Model: s.Config.AI.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: "你是一位智能合约安全审计专家。"},
			{Role: "user", Content: fmt.Sprintf(reviewPromptTemplate, language, code)},
		},
		Stream: false,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.Config.AI.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Config.AI.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI service returned status %d", resp.StatusCode)
	}

	var completion chatCompletion
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("AI service returned empty choices")
	}

	return parseReview(completion.Choices[0].Message.Content), nil
}

// parseReview 先按 JSON 解析（容忍 markdown 代码块包裹），失败则整段文字作为总结返回
func parseReview(content string) *CodeReview {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var review CodeReview
	if err := json.Unmarshal([]byte(trimmed), &review); err == nil && review.Summary != "" {
		if review.Issues == nil {
			review.Issues = []string{}
		}
		if review.Highlights == nil {
			review.Highlights = []string{}
		}
		if review.Recommendations == nil {
			review.Recommendations = []string{}
		}
		return &review
	}

	return &CodeReview{
		Summary:         content,
		Issues:          []string{},
		Highlights:      []string{},
		Recommendations: []string{},
		RawResponse:     true,
	}
}
