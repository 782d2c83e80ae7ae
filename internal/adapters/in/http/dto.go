package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON error payload returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Items []OrderItemPayload `json:"items"`
}

// OrderItemPayload is one submitted order line. Clients send snake_case or
// camelCase keys interchangeably; both spellings map to the same field and
// are canonicalized here before the domain validator sees them.
type OrderItemPayload struct {
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
}

// UnmarshalJSON accepts product_id/productId and unit_price/unitPrice
// spellings. Missing or malformed fields decode to zero values the item
// validator rejects with a positioned error.
func (p *OrderItemPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	pick := func(keys ...string) (json.RawMessage, bool) {
		for _, key := range keys {
			if value, ok := raw[key]; ok {
				return value, true
			}
		}
		return nil, false
	}

	if value, ok := pick("product_id", "productId"); ok {
		if err := json.Unmarshal(value, &p.ProductID); err != nil {
			return fmt.Errorf("product id: %w", err)
		}
	}
	if value, ok := pick("quantity"); ok {
		if err := json.Unmarshal(value, &p.Quantity); err != nil {
			return fmt.Errorf("quantity: %w", err)
		}
	}
	if value, ok := pick("unit_price", "unitPrice"); ok {
		if err := json.Unmarshal(value, &p.UnitPrice); err != nil {
			return fmt.Errorf("unit price: %w", err)
		}
	}

	return nil
}

// toItemInputs converts the request payload to the domain validator's input.
func (r CreateOrderRequest) toItemInputs() []order.ItemInput {
	inputs := make([]order.ItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		inputs = append(inputs, order.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return inputs
}

// AddOpinionRequest is the body of POST /api/orders/:id/opinions.
type AddOpinionRequest struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// extractStatusRef pulls the target status out of a status-change body.
// Three shapes are accepted: {"status": ...}, {"newStatus": ...} and a
// JSON-Patch array with a replace operation on /status. The value itself may
// be a status id (number or digit string) or a status name.
func extractStatusRef(body []byte) (status.Identifier, error) {
	trimmed := strings.TrimLeft(string(body), " \t\r\n")
	if strings.HasPrefix(trimmed, "[") {
		return statusRefFromPatch(body)
	}

	var payload struct {
		Status    json.RawMessage `json:"status"`
		NewStatus json.RawMessage `json:"newStatus"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return status.Identifier{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	value := payload.Status
	if value == nil {
		value = payload.NewStatus
	}
	if value == nil {
		return status.Identifier{}, errs.NewValueIsRequiredError("status")
	}

	return statusRefFromValue(value)
}

func statusRefFromPatch(body []byte) (status.Identifier, error) {
	var ops []struct {
		Op    string          `json:"op"`
		Path  string          `json:"path"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(body, &ops); err != nil {
		return status.Identifier{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	for _, op := range ops {
		if strings.EqualFold(op.Op, "replace") && op.Path == "/status" {
			return statusRefFromValue(op.Value)
		}
	}

	return status.Identifier{}, errs.NewValueIsRequiredError("status")
}

func statusRefFromValue(value json.RawMessage) (status.Identifier, error) {
	var asString string
	if err := json.Unmarshal(value, &asString); err == nil {
		return status.ParseIdentifier(asString), nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(value, &asNumber); err == nil {
		return status.ParseIdentifier(asNumber.String()), nil
	}

	return status.Identifier{}, errs.NewValueIsInvalidError("status")
}
