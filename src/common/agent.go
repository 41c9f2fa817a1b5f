package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rrs/src/config"
	"rrs/src/lib"
	"rrs/src/types"

	"github.com/tidwall/gjson"
)

const agentSystemPrompt = `You are an intelligent restaurant reservation assistant. Your role is to:

1. Understand customer reservation requests from natural language
2. Check table availability based on party size, time, and preferences
3. Suggest optimal table assignments considering restaurant layout and customer preferences
4. Handle special requests and dietary restrictions
5. Provide personalized recommendations

Available actions:
- check_availability: Check if tables are available for given criteria
- create_reservation: Create a new reservation
- suggest_alternatives: Suggest alternative times or tables
- handle_special_request: Process special requests

Always respond in JSON format with the following structure:
{
  "action": "action_name",
  "parameters": {},
  "response": "Human readable response",
  "confidence": 0.95
}`

// BuildAgentPrompt wraps a customer message with the assistant instructions
// and a short description of the restaurant being booked.
func BuildAgentPrompt(prompt string) string {
	context := fmt.Sprintf(`
Current restaurant data:
- Restaurant ID: %s
- Available tables: Various sizes (2-8 seats)
- Operating hours: 11:00 AM - 11:00 PM

Customer request: "%s"

Please analyze this request and provide the appropriate action.
`, config.DefaultRestaurantID(), prompt)
	return agentSystemPrompt + "\n\n" + context
}

// InterpretPrompt sends the customer message to the language model and parses
// the reply into an instruction. A reply that is not the expected JSON
// envelope falls back to a low-confidence availability check so the caller
// always gets something actionable.
func InterpretPrompt(ctx context.Context, prompt string) (*types.AgentInstruction, error) {
	client := lib.GetLLMClient()
	reply, err := client.Complete(ctx, BuildAgentPrompt(prompt))
	if err != nil {
		return nil, err
	}
	if gjson.Valid(reply) && gjson.Get(reply, "action").Exists() {
		var instruction types.AgentInstruction
		if err := json.Unmarshal([]byte(reply), &instruction); err == nil {
			return &instruction, nil
		}
	}
	return &types.AgentInstruction{
		Action: types.ACTION_CHECK_AVAILABILITY,
		Parameters: types.AgentParameters{
			PartySize:    config.DEFAULT_PARTY_SIZE,
			Time:         time.Now().Format(config.TIME_PARSE_FORMAT),
			RestaurantID: config.DefaultRestaurantID(),
		},
		Response:   reply,
		Confidence: 0.7,
	}, nil
}

// DispatchInstruction executes the action the model chose, substituting
// defaults for any parameter it left out.
func DispatchInstruction(instruction *types.AgentInstruction) (any, error) {
	params := instruction.Parameters
	switch instruction.Action {
	case types.ACTION_CHECK_AVAILABILITY:
		partySize := params.PartySize
		if partySize == 0 {
			partySize = config.DEFAULT_PARTY_SIZE
		}
		reservationTime := params.Time
		if reservationTime == "" {
			reservationTime = time.Now().Format(config.TIME_PARSE_FORMAT)
		}
		restaurantId := params.RestaurantID
		if restaurantId == "" {
			restaurantId = config.DefaultRestaurantID()
		}
		tables, err := FindAvailableTables(restaurantId, reservationTime, partySize)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"available": len(tables) > 0,
			"tables":    tables,
			"message":   fmt.Sprintf("Found %d available tables", len(tables)),
		}, nil
	case types.ACTION_CREATE_RESERVATION:
		customerId := params.CustomerID
		if customerId == "" {
			customerId = config.DEFAULT_CUSTOMER_ID
		}
		restaurantId := params.RestaurantID
		if restaurantId == "" {
			restaurantId = config.DefaultRestaurantID()
		}
		if params.TableID == "" {
			return nil, &FieldError{Field: "tableId"}
		}
		if params.Time == "" {
			return nil, &FieldError{Field: "time"}
		}
		reservation, err := CreateReservation(&types.CreateReservationRequestBody{
			CustomerID:      customerId,
			RestaurantID:    restaurantId,
			TableID:         params.TableID,
			ReservationTime: params.Time,
			PartySize:       params.PartySize,
			SpecialRequests: params.SpecialRequests,
		})
		if err != nil {
			return nil, err
		}
		return reservation, nil
	default:
		return map[string]any{"message": instruction.Response}, nil
	}
}
