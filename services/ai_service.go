package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"mindhuddle_server/models"

	openai "github.com/sashabaranov/go-openai"
)

// AIService is the external AI collaborator: icebreakers, compatibility
// scoring, and bio rewriting. Every call is best-effort; failures are
// swallowed locally and replaced with static fallbacks, never propagated.
// Results carry the subject profile's ID so a slow response for a
// previous target can be recognized and discarded by the caller.
type AIService struct {
	client *openai.Client
	model  string
}

// NewAIService reads OPENAI_API_KEY. Without a key the service still
// works and always answers with the fallbacks.
func NewAIService() *AIService {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Println("⚠️ OPENAI_API_KEY is missing. AI features will use fallbacks.")
		return &AIService{model: openai.GPT4oMini}
	}
	return &AIService{client: openai.NewClient(key), model: openai.GPT4oMini}
}

// IcebreakerResult is a set of at most three conversation starters for
// the profile identified by SubjectID.
type IcebreakerResult struct {
	SubjectID   string   `json:"subjectId"`
	Icebreakers []string `json:"icebreakers"`
}

// CompatibilityResult is a 0-100 score with a one-sentence reason for the
// profile identified by SubjectID.
type CompatibilityResult struct {
	SubjectID string `json:"subjectId"`
	Score     int    `json:"score"`
	Reason    string `json:"reason"`
}

var scorePattern = regexp.MustCompile(`(?i)SCORE:\s*(\d+)\s*\|\s*REASON:\s*(.*)`)

// GenerateIcebreakers produces up to three short conversation starters
// from viewer toward target.
func (s *AIService) GenerateIcebreakers(ctx context.Context, viewer, target *models.UserProfile) IcebreakerResult {
	result := IcebreakerResult{SubjectID: target.ID}
	if s.client == nil {
		result.Icebreakers = []string{
			"Hello! I'd love to connect.",
			"Hi, I noticed we share similar interests.",
		}
		return result
	}

	prompt := fmt.Sprintf(`I am %s, a %s.
I want to connect with %s, who is a %s.

My skills: %s.
My interests: %s.

Their skills: %s.
Their interests: %s.
Their bio: %q

Generate 3 professional, warm, and culturally sensitive conversation starters (icebreakers) based on the "Ubuntu" philosophy (connectedness, mutual respect).
Keep them concise (under 30 words).
Return ONLY the 3 strings separated by a pipe character (|).`,
		viewer.Name, viewer.Headline, target.Name, target.Headline,
		strings.Join(viewer.Skills, ", "), strings.Join(viewer.Interests, ", "),
		strings.Join(target.Skills, ", "), strings.Join(target.Interests, ", "),
		target.Bio)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		log.Printf("❌ Error generating icebreakers: %v", err)
		result.Icebreakers = []string{
			"Hi there! I'd love to connect and discuss our shared field.",
			"Hello! Your profile really stood out to me.",
		}
		return result
	}

	for _, part := range strings.Split(text, "|") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result.Icebreakers = append(result.Icebreakers, trimmed)
		}
		if len(result.Icebreakers) == 3 {
			break
		}
	}
	return result
}

// AnalyzeCompatibility scores the professional fit between viewer and
// target.
func (s *AIService) AnalyzeCompatibility(ctx context.Context, viewer, target *models.UserProfile) CompatibilityResult {
	result := CompatibilityResult{SubjectID: target.ID}
	if s.client == nil {
		result.Score = 75
		result.Reason = "You both have complimentary skills in technology."
		return result
	}

	prompt := fmt.Sprintf(`Analyze the professional compatibility between two people for a networking platform.

Person A (Me): %s, %s. Skills: %s. Interests: %s.
Person B (Target): %s, %s. Skills: %s. Interests: %s. Bio: %q

Provide a compatibility score from 0 to 100 and a 1-sentence reason focusing on synergy and potential collaboration.
Format: "SCORE: [number] | REASON: [text]"`,
		viewer.Name, viewer.Headline, strings.Join(viewer.Skills, ", "), strings.Join(viewer.Interests, ", "),
		target.Name, target.Headline, strings.Join(target.Skills, ", "), strings.Join(target.Interests, ", "),
		target.Bio)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		log.Printf("❌ Error analyzing compatibility: %v", err)
		result.Score = 0
		result.Reason = "Could not analyze compatibility at this time."
		return result
	}

	match := scorePattern.FindStringSubmatch(text)
	if match == nil {
		result.Score = 70
		result.Reason = "AI analysis incomplete, but profiles show promise."
		return result
	}
	score, _ := strconv.Atoi(match[1])
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.Score = score
	result.Reason = strings.TrimSpace(match[2])
	return result
}

// OptimizeBio rewrites a bio around the given skills. On any failure the
// input comes back unchanged; nothing is committed until the caller saves
// the result explicitly.
func (s *AIService) OptimizeBio(ctx context.Context, currentBio string, skills []string) string {
	if s.client == nil {
		return currentBio
	}

	prompt := fmt.Sprintf(`Rewrite the following professional bio to be more engaging, impactful, and aligned with the Ubuntu philosophy of openness and community.
Current Bio: %q
Key Skills to highlight: %s
Return ONLY the new bio text.`, currentBio, strings.Join(skills, ", "))

	text, err := s.complete(ctx, prompt)
	if err != nil {
		log.Printf("❌ Error optimizing bio: %v", err)
		return currentBio
	}
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return trimmed
	}
	return currentBio
}

func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
