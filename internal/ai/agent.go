package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// maxToolIterations bounds the agentic loop; each iteration may execute
// several read tools.
const maxToolIterations = 8

// SaveProductArgs is the input of the save_product write tool. An empty id
// creates a new product; a non-empty id updates the existing one. Omitted
// fields keep their current values.
type SaveProductArgs struct {
	ID           string   `json:"id,omitempty" jsonschema_description:"Id of the product to update. Omit to create a new product."`
	SKU          string   `json:"sku,omitempty" jsonschema_description:"Display stock-keeping code, e.g. SM-1008"`
	Name         string   `json:"name,omitempty" jsonschema_description:"Product display name"`
	Category     string   `json:"category,omitempty" jsonschema_description:"Free-text category label. Never use the reserved value 'All'."`
	StockLevel   *int     `json:"stockLevel,omitempty" jsonschema_description:"On-hand quantity"`
	Available    *int     `json:"available,omitempty" jsonschema_description:"Quantity not committed to outbound operations"`
	ReorderPoint *int     `json:"reorderPoint,omitempty" jsonschema_description:"Low-stock threshold"`
	UnitPrice    *float64 `json:"unitPrice,omitempty" jsonschema_description:"Unit price in rupees"`
}

// SaveProductSchema reflects the JSON schema for the save_product tool input.
func SaveProductSchema() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v SaveProductArgs
	schemaJSON, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return map[string]any{"type": "object"}
	}
	return schemaMap
}

// Outcome is the result of one agentic run: either a direct answer or a
// proposed write tool awaiting human confirmation.
type Outcome struct {
	Answer    string
	WriteTool string
	WriteArgs map[string]any
	Summary   string
}

type Agent struct {
	client *openai.Client
	model  shared.ResponsesModel
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	model := shared.ResponsesModel(shared.ChatModelGPT4o)
	if m := os.Getenv("OPENAI_MODEL"); m != "" {
		model = shared.ResponsesModel(m)
	}
	return &Agent{client: &client, model: model}
}

const assistantInstructions = `You are a highly intelligent inventory management assistant for "StockMaster".
You have access to a JSON snapshot of the current state of the company:
%s

Answer user questions specifically based on this data.
- If asked about stock levels, check the 'inventory' array.
- If asked about financial valuation, check the KPIs or calculate from product unitPrice * stockLevel.
- If asked about pending orders, check 'recentOperations'.
- Be concise, professional, and helpful.
- If the answer requires calculation (e.g. "total value of Electronics"), perform it.
- Format currency in Indian Rupees (₹).`

// Answer responds to a single question over the provided JSON snapshot of
// inventory state, without tool use.
func (a *Agent) Answer(ctx context.Context, question, contextJSON string) (string, error) {
	params := responses.ResponseNewParams{
		Model:        a.model,
		Instructions: param.NewOpt(fmt.Sprintf(assistantInstructions, contextJSON)),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(question),
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}
	return content, nil
}

const agenticInstructions = `You are the StockMaster inventory assistant.
Use the read tools to look up products, KPIs, operations and move history
before answering. When the user asks you to create or change a product,
call save_product with the fields to change — it will be confirmed by the
user before anything is applied. Quantities that the user does not mention
must be omitted, not guessed. Format currency in Indian Rupees (₹).`

// Run routes a natural language input through the agentic tool loop.
// Read tools execute autonomously; the first write tool call terminates
// the loop and is returned as a proposal for human confirmation.
func (a *Agent) Run(ctx context.Context, input string, registry *ToolRegistry) (*Outcome, error) {
	params := responses.ResponseNewParams{
		Model:        a.model,
		Instructions: param.NewOpt(agenticInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(input),
		},
		Tools: registry.ToOpenAITools(),
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai responses error: %w", err)
	}

	for iter := 0; iter < maxToolIterations; iter++ {
		var outputs responses.ResponseInputParam

		for _, item := range resp.Output {
			if item.Type != "function_call" {
				continue
			}
			call := item.AsFunctionCall()

			def, ok := registry.Get(call.Name)
			if !ok {
				outputs = append(outputs, responses.ResponseInputItemParamOfFunctionCallOutput(
					call.CallID, fmt.Sprintf(`{"error":"unknown tool %s"}`, call.Name)))
				continue
			}

			args := map[string]any{}
			if call.Arguments != "" {
				if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
					return nil, fmt.Errorf("failed to parse arguments for tool %s: %w", call.Name, err)
				}
			}

			if !def.IsReadTool {
				return &Outcome{
					WriteTool: call.Name,
					WriteArgs: args,
					Summary:   resp.OutputText(),
				}, nil
			}

			result, err := def.Handler(ctx, args)
			if err != nil {
				result = fmt.Sprintf(`{"error":%q}`, err.Error())
			}
			outputs = append(outputs, responses.ResponseInputItemParamOfFunctionCallOutput(call.CallID, result))
		}

		if len(outputs) == 0 {
			content := resp.OutputText()
			if content == "" {
				return nil, fmt.Errorf("empty response content")
			}
			return &Outcome{Answer: content}, nil
		}

		resp, err = a.client.Responses.New(ctx, responses.ResponseNewParams{
			Model:              a.model,
			PreviousResponseID: param.NewOpt(resp.ID),
			Input: responses.ResponseNewParamsInputUnion{
				OfInputItemList: outputs,
			},
			Tools: registry.ToOpenAITools(),
		})
		if err != nil {
			return nil, fmt.Errorf("openai responses error: %w", err)
		}
	}

	return nil, fmt.Errorf("tool loop exceeded %d iterations", maxToolIterations)
}
