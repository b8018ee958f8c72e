package kratos

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"blog-service/app/domain"
)

// transformError turns a Kratos API error into something the usecase layer
// can classify. Invalid credentials and duplicate identities get sentinel
// errors; everything else keeps the provider's message.
func (g *Gateway) transformError(err error, httpResp *http.Response, operation string) error {
	g.logger.Error("kratos request failed",
		"operation", operation,
		"http_status", statusCode(httpResp),
		"error", err)

	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if message := extractMessage(kratosErr.Body()); message != "" {
			return classifyMessage(message, operation)
		}
	}

	return fmt.Errorf("kratos %s failed: %w", operation, err)
}

// extractMessage pulls the most specific human-readable message out of a
// Kratos error body. UI node messages carry field-level validation text,
// flow-level messages come next, then the generic error envelope.
func extractMessage(body []byte) string {
	var resp map[string]interface{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return strings.TrimSpace(string(body))
	}

	if ui, ok := resp["ui"].(map[string]interface{}); ok {
		if nodes, ok := ui["nodes"].([]interface{}); ok {
			for _, node := range nodes {
				nodeMap, ok := node.(map[string]interface{})
				if !ok {
					continue
				}
				if text := firstMessageText(nodeMap["messages"]); text != "" {
					return text
				}
			}
		}
		if text := firstMessageText(ui["messages"]); text != "" {
			return text
		}
	}

	if errObj, ok := resp["error"].(map[string]interface{}); ok {
		if reason, ok := errObj["reason"].(string); ok && reason != "" {
			return reason
		}
		if message, ok := errObj["message"].(string); ok && message != "" {
			return message
		}
	}

	if message, ok := resp["message"].(string); ok {
		return message
	}

	return ""
}

// firstMessageText returns the text of the first error-type message in a
// Kratos UI messages array
func firstMessageText(raw interface{}) string {
	messages, ok := raw.([]interface{})
	if !ok {
		return ""
	}
	for _, msg := range messages {
		msgMap, ok := msg.(map[string]interface{})
		if !ok {
			continue
		}
		if msgType, ok := msgMap["type"].(string); ok && msgType != "error" {
			continue
		}
		if text, ok := msgMap["text"].(string); ok && text != "" {
			return text
		}
	}
	return ""
}

// classifyMessage maps well-known Kratos messages to domain sentinels
func classifyMessage(message, operation string) error {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "credentials are invalid") ||
		strings.Contains(lower, "no user found") {
		return fmt.Errorf("%s: %w", message, domain.ErrInvalidCredentials)
	}

	return fmt.Errorf("kratos %s failed: %s", operation, message)
}

// isSessionGone reports whether the response says the session token no
// longer names a live session
func isSessionGone(httpResp *http.Response) bool {
	if httpResp == nil {
		return false
	}
	return httpResp.StatusCode == http.StatusUnauthorized ||
		httpResp.StatusCode == http.StatusForbidden ||
		httpResp.StatusCode == http.StatusNotFound
}

func statusCode(httpResp *http.Response) int {
	if httpResp == nil {
		return 0
	}
	return httpResp.StatusCode
}
