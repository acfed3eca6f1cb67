package tools

import (
	openai "github.com/sashabaranov/go-openai"
)

// EncodeOpenAI converts the catalog into an OpenAI-compatible tools array,
// for agents that bridge the HTTP surface into a function-calling loop.
func EncodeOpenAI(defs []Definition) []openai.Tool {
	out := make([]openai.Tool, 0, len(defs))
	for _, d := range defs {
		out = append(out, openai.Tool{
			Type: "function",
			Function: &openai.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.InputSchema(),
			},
		})
	}
	return out
}
